// Package spectrum turns windowed PCM frames into power spectra.
package spectrum

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Analyzer buffers incoming samples into overlapping frames, applies a
// Hamming window and emits the lower half of each frame's power
// spectrum to a FeatureConsumer.
type Analyzer struct {
	frameSize    int
	frameOverlap int

	fft    *fourier.FFT
	window []float64
	coeffs []complex128
	power  []float64

	ringBuf []float64

	consumer FeatureConsumer
}

// FeatureConsumer receives one power-spectrum frame (frameSize/2 bins)
// at a time.
type FeatureConsumer interface {
	Consume(frame []float64)
	Reset()
}

// NewAnalyzer builds an Analyzer for the given frame size and overlap,
// forwarding its output to consumer.
func NewAnalyzer(frameSize, frameOverlap int, consumer FeatureConsumer) *Analyzer {
	return &Analyzer{
		frameSize:    frameSize,
		frameOverlap: frameOverlap,
		fft:          fourier.NewFFT(frameSize),
		window:       hammingWindow(frameSize, 1.0),
		coeffs:       make([]complex128, frameSize/2+1),
		power:        make([]float64, frameSize/2),
		consumer:     consumer,
	}
}

// Reset discards any buffered samples and propagates a reset to the
// downstream consumer.
func (a *Analyzer) Reset() {
	a.ringBuf = a.ringBuf[:0]
	a.consumer.Reset()
}

// Consume appends data to the internal ring buffer and emits as many
// analysis frames as it now contains.
func (a *Analyzer) Consume(data []float64) {
	a.ringBuf = append(a.ringBuf, data...)

	hop := a.frameSize - a.frameOverlap
	for len(a.ringBuf) >= a.frameSize {
		frame := a.ringBuf[:a.frameSize]
		windowed := make([]float64, a.frameSize)
		for i, v := range frame {
			windowed[i] = v * a.window[i]
		}

		coeffs := a.fft.Coefficients(a.coeffs, windowed)
		for i := 0; i < a.frameSize/2; i++ {
			re, im := real(coeffs[i]), imag(coeffs[i])
			a.power[i] = re*re + im*im
		}

		a.consumer.Consume(a.power)
		a.ringBuf = a.ringBuf[hop:]
	}
}

// Flush does nothing: the reference implementation deliberately leaves
// a residual partial frame unanalyzed rather than zero-padding it.
func (a *Analyzer) Flush() {}

func hammingWindow(size int, scale float64) []float64 {
	w := make([]float64, size)
	for i := range w {
		w[i] = scale * (0.54 - 0.46*math.Cos(2.0*math.Pi*float64(i)/(float64(size)-1.0)))
	}
	return w
}
