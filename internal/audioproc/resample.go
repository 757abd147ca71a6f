package audioproc

import "math"

// sincLen is the number of input samples on each side of the current
// output position a Resampler convolves against, matching the
// reference implementation's sinc_len=16 parameter.
const sincLen = 16

// oversampling is how many discrete sub-sample phases the windowed
// sinc kernel is tabulated at, matching the reference's
// oversampling_factor=128.
const oversampling = 128

const cutoff = 0.8

// Resampler performs fixed-ratio sample-rate conversion using a
// windowed-sinc kernel, precomputed per sub-sample phase and picked by
// nearest phase, mirroring the reference's sinc_len/f_cutoff/window
// parameters and its "Nearest" interpolation mode. It is not bit-exact
// with the reference's rubato-based resampler (see DESIGN.md); it is a
// from-scratch stdlib implementation of the same windowed-sinc recipe.
type Resampler struct {
	ratio     float64
	effCutoff float64
	kernel    [][2 * sincLen]float64

	history []float64 // trailing sincLen samples carried across calls
	pos     float64    // fractional input position of the next output sample
}

// NewResampler builds a Resampler converting from sourceRate to
// targetRate.
func NewResampler(sourceRate, targetRate uint32) *Resampler {
	ratio := float64(targetRate) / float64(sourceRate)
	eff := cutoff
	if ratio < 1.0 {
		eff *= ratio
	}

	r := &Resampler{
		ratio:     ratio,
		effCutoff: eff,
		kernel:    make([][2 * sincLen]float64, oversampling),
		history:   make([]float64, sincLen),
	}
	r.buildKernel()
	return r
}

func (r *Resampler) buildKernel() {
	for phase := 0; phase < oversampling; phase++ {
		frac := float64(phase) / float64(oversampling)
		var sum float64
		var taps [2 * sincLen]float64
		for j := 0; j < 2*sincLen; j++ {
			x := float64(j-sincLen+1) - frac
			taps[j] = sincFunc(x*r.effCutoff) * r.effCutoff * blackman(x, sincLen)
			sum += taps[j]
		}
		if sum != 0 {
			for j := range taps {
				taps[j] /= sum
			}
		}
		r.kernel[phase] = taps
	}
}

func sincFunc(x float64) float64 {
	if x == 0 {
		return 1.0
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func blackman(x float64, half int) float64 {
	n := x + float64(half)
	N := float64(2 * half)
	if n < 0 || n > N {
		return 0
	}
	return 0.42 - 0.5*math.Cos(2*math.Pi*n/N) + 0.08*math.Cos(4*math.Pi*n/N)
}

// Process resamples a fixed chunk of input, returning the resampled
// output. History from the previous call is used to keep the kernel
// fed near the start of the chunk; the trailing sincLen samples of this
// chunk are kept for the next call. Call with flush=true on the final
// chunk to drain without requiring further input.
func (r *Resampler) Process(input []float64, flush bool) []float64 {
	extended := make([]float64, 0, len(r.history)+len(input))
	extended = append(extended, r.history...)
	extended = append(extended, input...)

	// Index 0 of extended corresponds to input sample -sincLen relative
	// to the start of this chunk.
	var out []float64
	maxPos := float64(len(input))
	if flush {
		maxPos = float64(len(input)) // do not fabricate samples past the real input
	}
	for r.pos < maxPos {
		center := r.pos + float64(sincLen) // index into extended for sample 0 of this chunk
		base := int(math.Floor(center))
		frac := center - float64(base)
		phase := int(math.Round(frac*oversampling)) % oversampling
		if phase < 0 {
			phase += oversampling
		}

		taps := r.kernel[phase]
		var acc float64
		for j := 0; j < 2*sincLen; j++ {
			idx := base - sincLen + 1 + j
			if idx >= 0 && idx < len(extended) {
				acc += taps[j] * extended[idx]
			}
		}
		out = append(out, acc)
		r.pos += 1.0 / r.ratio
	}
	r.pos -= maxPos

	if len(input) >= sincLen {
		copy(r.history, input[len(input)-sincLen:])
	} else {
		copy(r.history, r.history[len(input):])
		copy(r.history[sincLen-len(input):], input)
	}

	return out
}
