package classify

import (
	"github.com/darksv/go-chromaprint/internal/consts"
	"github.com/darksv/go-chromaprint/internal/rollingimage"
)

// Classifier pairs a rectangle Filter with the Quantizer that turns its
// continuous output into a 2-bit level.
type Classifier struct {
	filter    Filter
	quantizer Quantizer
}

// NewClassifier builds a Classifier from a literal spec.
func NewClassifier(spec consts.ClassifierSpec) Classifier {
	return Classifier{
		filter:    NewFilter(spec.Filter),
		quantizer: NewQuantizer(spec.Quantizer),
	}
}

// Filter returns the classifier's rectangle filter, mainly so callers
// can size a RollingIntegralImage off its Width.
func (c Classifier) Filter() Filter {
	return c.filter
}

// Classify evaluates the filter at offset and quantizes the result.
func (c Classifier) Classify(img *rollingimage.Image, offset int) uint32 {
	return c.quantizer.Quantize(c.filter.Apply(img, offset))
}
