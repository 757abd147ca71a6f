package chroma

import "math"

// Normalizer rescales each incoming chroma vector to unit L2 norm,
// zeroing vectors whose norm falls below a small epsilon instead of
// dividing by (near) zero.
type Normalizer struct {
	epsilon  float64
	buf      [numBands]float64
	consumer FeatureConsumer
}

// NewNormalizer builds a Normalizer with the given zero-norm threshold.
func NewNormalizer(epsilon float64, consumer FeatureConsumer) *Normalizer {
	return &Normalizer{epsilon: epsilon, consumer: consumer}
}

// Consume normalizes features in place into an internal buffer and
// forwards the result downstream.
func (n *Normalizer) Consume(features []float64) {
	copy(n.buf[:], features)

	norm := 0.0
	for _, v := range n.buf {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	if norm < n.epsilon {
		for i := range n.buf {
			n.buf[i] = 0
		}
	} else {
		for i := range n.buf {
			n.buf[i] /= norm
		}
	}

	n.consumer.Consume(n.buf[:])
}

// Reset propagates a reset downstream.
func (n *Normalizer) Reset() {
	n.consumer.Reset()
}
