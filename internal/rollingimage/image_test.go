package rollingimage

import "testing"

func TestSimple(t *testing.T) {
	img := New(4)
	img.AddRow([]float64{1, 2, 3})

	if got := img.Columns(); got != 3 {
		t.Fatalf("Columns() = %d, want 3", got)
	}
	if got := img.Rows(); got != 1 {
		t.Fatalf("Rows() = %d, want 1", got)
	}

	check := func(r1, c1, r2, c2 int, want float64) {
		t.Helper()
		if got := img.Area(r1, c1, r2, c2); got != want {
			t.Errorf("Area(%d,%d,%d,%d) = %v, want %v", r1, c1, r2, c2, got, want)
		}
	}

	check(0, 0, 1, 1, 1.0)
	check(0, 1, 1, 2, 2.0)
	check(0, 2, 1, 3, 3.0)
	check(0, 0, 1, 3, 1.0+2.0+3.0)

	img.AddRow([]float64{4, 5, 6})

	if got := img.Rows(); got != 2 {
		t.Fatalf("Rows() = %d, want 2", got)
	}

	check(1, 0, 2, 1, 4.0)
	check(1, 1, 2, 2, 5.0)
	check(1, 2, 2, 3, 6.0)
}
