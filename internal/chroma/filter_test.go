package chroma

import "testing"

type recordingConsumer struct {
	rows [][]float64
}

func (r *recordingConsumer) Consume(features []float64) {
	r.rows = append(r.rows, append([]float64(nil), features...))
}

func (r *recordingConsumer) Reset() {}

func TestChromaFilterBlur2(t *testing.T) {
	rec := &recordingConsumer{}
	f := NewFilter([]float64{0.5, 0.5}, rec)

	f.Consume(pad12(0.0, 5.0))
	f.Consume(pad12(1.0, 6.0))
	f.Consume(pad12(2.0, 7.0))

	if len(rec.rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rec.rows))
	}
	approxEqualSlice(t, rec.rows[0], pad12(0.5, 5.5), 1e-9)
	approxEqualSlice(t, rec.rows[1], pad12(1.5, 6.5), 1e-9)
}

func TestChromaFilterBlur3(t *testing.T) {
	rec := &recordingConsumer{}
	f := NewFilter([]float64{0.5, 0.7, 0.5}, rec)

	f.Consume(pad12(0.0, 5.0))
	f.Consume(pad12(1.0, 6.0))
	f.Consume(pad12(2.0, 7.0))
	f.Consume(pad12(3.0, 8.0))

	if len(rec.rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rec.rows))
	}
	approxEqualSlice(t, rec.rows[0], pad12(1.7, 10.2), 1e-9)
	approxEqualSlice(t, rec.rows[1], pad12(3.4, 11.9), 1e-9)
}

func TestChromaFilterDiff(t *testing.T) {
	rec := &recordingConsumer{}
	f := NewFilter([]float64{1.0, -1.0}, rec)

	f.Consume(pad12(0.0, 5.0))
	f.Consume(pad12(1.0, 6.0))
	f.Consume(pad12(2.0, 7.0))

	if len(rec.rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rec.rows))
	}
	approxEqualSlice(t, rec.rows[0], pad12(-1.0, -1.0), 1e-9)
	approxEqualSlice(t, rec.rows[1], pad12(-1.0, -1.0), 1e-9)
}
