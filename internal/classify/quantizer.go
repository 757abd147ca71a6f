package classify

import "github.com/darksv/go-chromaprint/internal/consts"

// Quantizer maps a continuous filter output to one of four levels using
// three thresholds.
type Quantizer struct {
	t0, t1, t2 float64
}

// NewQuantizer builds a Quantizer from a literal threshold spec.
func NewQuantizer(spec consts.QuantizerSpec) Quantizer {
	return Quantizer{t0: spec.T0, t1: spec.T1, t2: spec.T2}
}

// Quantize returns 0, 1, 2 or 3 depending on which threshold bracket val
// falls into.
func (q Quantizer) Quantize(val float64) uint32 {
	if val < q.t1 {
		if val < q.t0 {
			return 0
		}
		return 1
	}
	if val < q.t2 {
		return 2
	}
	return 3
}
