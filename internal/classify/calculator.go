package classify

import (
	"github.com/darksv/go-chromaprint/internal/consts"
	"github.com/darksv/go-chromaprint/internal/rollingimage"
)

// Calculator consumes normalized chroma feature vectors and, once it has
// accumulated maxFilterWidth frames of history, emits one 32-bit
// sub-fingerprint for every frame it consumes.
type Calculator struct {
	classifiers    []Classifier
	maxFilterWidth int
	image          *rollingimage.Image
	fingerprint    []uint32
}

// NewCalculator builds a Calculator for the given classifier bank. The
// bank must be non-empty and no classifier's filter may be wider than
// consts.RollingImageMaxRows (255) frames, matching the
// RollingIntegralImage's fixed retention window.
func NewCalculator(specs []consts.ClassifierSpec) *Calculator {
	classifiers := make([]Classifier, len(specs))
	maxWidth := 0
	for i, spec := range specs {
		classifiers[i] = NewClassifier(spec)
		if w := classifiers[i].Filter().Width(); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth > consts.RollingImageMaxRows {
		panic("classify: classifier filter width out of range")
	}

	return &Calculator{
		classifiers:    classifiers,
		maxFilterWidth: maxWidth,
		image:          rollingimage.New(consts.RollingImageMaxRows),
	}
}

// Consume adds one chroma feature vector (12 bins) to the rolling image
// and, once enough history has accumulated, appends the resulting
// sub-fingerprint.
func (c *Calculator) Consume(features []float64) {
	c.image.AddRow(features)
	if c.image.Rows() >= c.maxFilterWidth {
		c.fingerprint = append(c.fingerprint, c.subfingerprintAt(c.image.Rows()-c.maxFilterWidth))
	}
}

// Reset discards all accumulated image history and the fingerprint
// built so far.
func (c *Calculator) Reset() {
	c.image.Reset()
	c.fingerprint = c.fingerprint[:0]
}

// Fingerprint returns the sub-fingerprints produced so far.
func (c *Calculator) Fingerprint() []uint32 {
	return c.fingerprint
}

func (c *Calculator) subfingerprintAt(offset int) uint32 {
	var bits uint32
	for _, classifier := range c.classifiers {
		bits = (bits << 2) | consts.GrayCode[classifier.Classify(c.image, offset)]
	}
	return bits
}
