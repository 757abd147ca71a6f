package chroma

// Filter is a temporal FIR filter convolving a short window of
// consecutive chroma feature vectors with a fixed coefficient set.
type Filter struct {
	coefficients []float64
	consumer     FeatureConsumer

	buffer       [][numBands]float64
	result       [numBands]float64
	bufferOffset int
	bufferSize   int
}

// NewFilter builds a Filter with the given FIR coefficients.
func NewFilter(coefficients []float64, consumer FeatureConsumer) *Filter {
	buf := make([][numBands]float64, 8)
	return &Filter{
		coefficients: coefficients,
		consumer:     consumer,
		buffer:       buf,
		bufferSize:   1,
	}
}

// Consume pushes one chroma vector into the circular buffer and, once
// enough history has accumulated, emits the convolved result.
func (f *Filter) Consume(features []float64) {
	copy(f.buffer[f.bufferOffset][:], features)
	f.bufferOffset = (f.bufferOffset + 1) % len(f.buffer)

	if f.bufferSize >= len(f.coefficients) {
		offset := (f.bufferOffset + len(f.buffer) - len(f.coefficients)) % len(f.buffer)
		for i := range f.result {
			f.result[i] = 0
		}
		for i := range f.result {
			for j, c := range f.coefficients {
				f.result[i] += f.buffer[(offset+j)%len(f.buffer)][i] * c
			}
		}
		f.consumer.Consume(f.result[:])
	} else {
		f.bufferSize++
	}
}

// Reset rewinds the circular buffer without clearing its contents and
// propagates the reset to the downstream consumer.
func (f *Filter) Reset() {
	f.bufferSize = 1
	f.bufferOffset = 0
	f.consumer.Reset()
}
