// Package consts holds the literal tuning tables and bit-layout constants
// shared across the fingerprinting pipeline. Values here are load-bearing:
// changing any of them changes the fingerprints a Configuration produces.
package consts

// FilterKind selects one of the six rectangular classifier shapes a
// Classifier evaluates over the rolling chroma integral image.
type FilterKind int

const (
	Filter0 FilterKind = iota
	Filter1
	Filter2
	Filter3
	Filter4
	Filter5
)

// FilterSpec describes one classifier's rectangle placement: Y is the
// chroma-bin offset, Height the number of chroma bins, Width the number
// of time frames.
type FilterSpec struct {
	Kind   FilterKind
	Y      int
	Height int
	Width  int
}

// QuantizerSpec holds the three thresholds splitting a filter's
// continuous output into four quantized levels.
type QuantizerSpec struct {
	T0, T1, T2 float64
}

// ClassifierSpec pairs a filter placement with its quantizer thresholds.
type ClassifierSpec struct {
	Filter    FilterSpec
	Quantizer QuantizerSpec
}

// GrayCode maps a two-bit quantizer level to its Gray-coded bit pattern,
// so that adjacent quantization levels differ by a single bit in the
// assembled sub-fingerprint.
var GrayCode = [4]uint32{0, 1, 3, 2}

// ChromaFilterCoefficients are the temporal FIR taps the ChromaFilter
// stage convolves across consecutive 12-bin chroma feature vectors.
var ChromaFilterCoefficients = []float64{0.25, 0.75, 1.0, 0.75, 0.25}

const (
	// DefaultFrameSize is the number of audio samples in a single FFT
	// analysis frame.
	DefaultFrameSize = 4096
	// DefaultFrameOverlap is the number of samples shared between two
	// consecutive analysis frames.
	DefaultFrameOverlap = DefaultFrameSize - DefaultFrameSize/3

	// MinFreq and MaxFreq bound the frequency range mapped onto the 12
	// chroma bins.
	MinFreq = 28
	MaxFreq = 3520

	// DefaultSampleRate is the sample rate every Configuration resamples
	// its input to before analysis.
	DefaultSampleRate = 11025

	// MinSampleRate bounds the input sample rate AudioProcessor accepts;
	// this rate and anything below it are rejected with
	// ErrSampleRateTooLow.
	MinSampleRate = 1000

	// MaxBufferSize bounds how many input samples AudioProcessor will
	// accumulate before it can fill a resampler batch.
	MaxBufferSize = 32768

	// RollingImageMaxRows is the maximum number of classifier filter
	// rows (time frames) a RollingIntegralImage needs to keep live; no
	// classifier filter is wider than this.
	RollingImageMaxRows = 255

	// ChromaNormalizerEpsilon is the L2-norm floor below which a chroma
	// vector is treated as silent and zeroed instead of divided.
	ChromaNormalizerEpsilon = 0.01
)

// ClassifierTest1 is the filter bank used by the Test1 configuration
// preset.
var ClassifierTest1 = []ClassifierSpec{
	{FilterSpec{Filter0, 0, 3, 15}, QuantizerSpec{2.10543, 2.45354, 2.69414}},
	{FilterSpec{Filter1, 0, 4, 14}, QuantizerSpec{-0.345922, 0.0463746, 0.446251}},
	{FilterSpec{Filter1, 4, 4, 11}, QuantizerSpec{-0.392132, 0.0291077, 0.443391}},
	{FilterSpec{Filter3, 0, 4, 14}, QuantizerSpec{-0.192851, 0.00583535, 0.204053}},
	{FilterSpec{Filter2, 8, 2, 4}, QuantizerSpec{-0.0771619, -0.00991999, 0.0575406}},
	{FilterSpec{Filter5, 6, 2, 15}, QuantizerSpec{-0.710437, -0.518954, -0.330402}},
	{FilterSpec{Filter1, 9, 2, 16}, QuantizerSpec{-0.353724, -0.0189719, 0.289768}},
	{FilterSpec{Filter3, 4, 2, 10}, QuantizerSpec{-0.128418, -0.0285697, 0.0591791}},
	{FilterSpec{Filter3, 9, 2, 16}, QuantizerSpec{-0.139052, -0.0228468, 0.0879723}},
	{FilterSpec{Filter2, 1, 3, 6}, QuantizerSpec{-0.133562, 0.00669205, 0.155012}},
	{FilterSpec{Filter3, 3, 6, 2}, QuantizerSpec{-0.0267, 0.00804829, 0.0459773}},
	{FilterSpec{Filter2, 8, 1, 10}, QuantizerSpec{-0.0972417, 0.0152227, 0.129003}},
	{FilterSpec{Filter3, 4, 4, 14}, QuantizerSpec{-0.141434, 0.00374515, 0.149935}},
	{FilterSpec{Filter5, 4, 2, 15}, QuantizerSpec{-0.64035, -0.466999, -0.285493}},
	{FilterSpec{Filter5, 9, 2, 3}, QuantizerSpec{-0.322792, -0.254258, -0.174278}},
	{FilterSpec{Filter2, 1, 8, 4}, QuantizerSpec{-0.0741375, -0.00590933, 0.0600357}},
}

// ClassifierTest2 is the filter bank used by the Test2 (default) and
// Test5 configuration presets.
var ClassifierTest2 = []ClassifierSpec{
	{FilterSpec{Filter0, 4, 3, 15}, QuantizerSpec{1.98215, 2.35817, 2.63523}},
	{FilterSpec{Filter4, 4, 6, 15}, QuantizerSpec{-1.03809, -0.651211, -0.282167}},
	{FilterSpec{Filter1, 0, 4, 16}, QuantizerSpec{-0.298702, 0.119262, 0.558497}},
	{FilterSpec{Filter3, 8, 2, 12}, QuantizerSpec{-0.105439, 0.0153946, 0.135898}},
	{FilterSpec{Filter3, 4, 4, 8}, QuantizerSpec{-0.142891, 0.0258736, 0.200632}},
	{FilterSpec{Filter4, 0, 3, 5}, QuantizerSpec{-0.826319, -0.590612, -0.368214}},
	{FilterSpec{Filter1, 2, 2, 9}, QuantizerSpec{-0.557409, -0.233035, 0.0534525}},
	{FilterSpec{Filter2, 7, 3, 4}, QuantizerSpec{-0.0646826, 0.00620476, 0.0784847}},
	{FilterSpec{Filter2, 6, 2, 16}, QuantizerSpec{-0.192387, -0.029699, 0.215855}},
	{FilterSpec{Filter2, 1, 3, 2}, QuantizerSpec{-0.0397818, -0.00568076, 0.0292026}},
	{FilterSpec{Filter5, 10, 1, 15}, QuantizerSpec{-0.53823, -0.369934, -0.190235}},
	{FilterSpec{Filter3, 6, 2, 10}, QuantizerSpec{-0.124877, 0.0296483, 0.139239}},
	{FilterSpec{Filter2, 1, 1, 14}, QuantizerSpec{-0.101475, 0.0225617, 0.231971}},
	{FilterSpec{Filter3, 5, 6, 4}, QuantizerSpec{-0.0799915, -0.00729616, 0.063262}},
	{FilterSpec{Filter1, 9, 2, 12}, QuantizerSpec{-0.272556, 0.019424, 0.302559}},
	{FilterSpec{Filter3, 4, 2, 14}, QuantizerSpec{-0.164292, -0.0321188, 0.0846339}},
}

// ClassifierTest3 is the filter bank used by the Test3 configuration
// preset (identical tuning to Test2; Test3 differs by enabling chroma
// interpolation).
var ClassifierTest3 = ClassifierTest2
