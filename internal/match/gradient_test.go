package match

import "testing"

func TestGradientEmpty(t *testing.T) {
	if got := Gradient(nil); len(got) != 0 {
		t.Fatalf("got %d elements, want 0", len(got))
	}
}

func TestGradientOneElement(t *testing.T) {
	got := Gradient([]float64{1.0})
	if len(got) != 1 || got[0] != 0.0 {
		t.Fatalf("got %v, want [0.0]", got)
	}
}

func TestGradientTwoElements(t *testing.T) {
	got := Gradient([]float64{1.0, 2.0})
	want := []float64{1.0, 1.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGradientThreeElements(t *testing.T) {
	got := Gradient([]float64{1.0, 2.0, 4.0})
	want := []float64{1.0, 1.5, 2.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGradientFourElements(t *testing.T) {
	got := Gradient([]float64{1.0, 2.0, 4.0, 10.0})
	want := []float64{1.0, 1.5, 4.0, 6.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
