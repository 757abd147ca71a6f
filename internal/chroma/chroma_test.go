package chroma

import "testing"

func TestMapperNormalA(t *testing.T) {
	capture := &captureConsumer{}
	m := NewMapper(10, 510, 256, 1000, false, capture)
	frame := make([]float64, 128)
	frame[113] = 1.0
	m.Consume(frame)

	want := pad12(1.0)
	approxEqualSlice(t, capture.features, want, 1e-4)
}

func TestMapperNormalGSharp(t *testing.T) {
	capture := &captureConsumer{}
	m := NewMapper(10, 510, 256, 1000, false, capture)
	frame := make([]float64, 128)
	frame[112] = 1.0
	m.Consume(frame)

	want := make([]float64, numBands)
	want[11] = 1.0
	approxEqualSlice(t, capture.features, want, 1e-4)
}

func TestMapperNormalB(t *testing.T) {
	capture := &captureConsumer{}
	m := NewMapper(10, 510, 256, 1000, false, capture)
	frame := make([]float64, 128)
	frame[64] = 1.0
	m.Consume(frame)

	want := make([]float64, numBands)
	want[2] = 1.0
	approxEqualSlice(t, capture.features, want, 1e-4)
}

func TestMapperInterpolatedA(t *testing.T) {
	capture := &captureConsumer{}
	m := NewMapper(10, 510, 256, 1000, true, capture)
	frame := make([]float64, 128)
	frame[113] = 1.0
	m.Consume(frame)

	want := make([]float64, numBands)
	want[0] = 0.555242
	want[11] = 0.444758
	approxEqualSlice(t, capture.features, want, 1e-4)
}
