// Package classify turns a rolling chroma integral image into the
// 32-bit sub-fingerprints that make up a fingerprint.
package classify

import (
	"math"

	"github.com/darksv/go-chromaprint/internal/consts"
	"github.com/darksv/go-chromaprint/internal/rollingimage"
)

func subtractLog(a, b float64) float64 {
	r := math.Log((1.0 + a) / (1.0 + b))
	if math.IsNaN(r) {
		panic("classify: subtractLog produced NaN")
	}
	return r
}

// filter0 through filter5 mirror the six rectangle shapes a classifier can
// evaluate over the integral image: a flat block, a vertical split
// (top/bottom halves), a horizontal split (left/right halves), a
// checkerboard quadrant split, a horizontal thirds split and a vertical
// thirds split.

func filter0(img *rollingimage.Image, x, y, w, h int) float64 {
	a := img.Area(x, y, x+w, y+h)
	return subtractLog(a, 0.0)
}

func filter1(img *rollingimage.Image, x, y, w, h int) float64 {
	h2 := h / 2
	a := img.Area(x, y+h2, x+w, y+h)
	b := img.Area(x, y, x+w, y+h2)
	return subtractLog(a, b)
}

func filter2(img *rollingimage.Image, x, y, w, h int) float64 {
	w2 := w / 2
	a := img.Area(x+w2, y, x+w, y+h)
	b := img.Area(x, y, x+w2, y+h)
	return subtractLog(a, b)
}

func filter3(img *rollingimage.Image, x, y, w, h int) float64 {
	w2, h2 := w/2, h/2
	a := img.Area(x, y+h2, x+w2, y+h) + img.Area(x+w2, y, x+w, y+h2)
	b := img.Area(x, y, x+w2, y+h2) + img.Area(x+w2, y+h2, x+w, y+h)
	return subtractLog(a, b)
}

func filter4(img *rollingimage.Image, x, y, w, h int) float64 {
	h3 := h / 3
	a := img.Area(x, y+h3, x+w, y+2*h3)
	b := img.Area(x, y, x+w, y+h3) + img.Area(x, y+2*h3, x+w, y+h)
	return subtractLog(a, b)
}

func filter5(img *rollingimage.Image, x, y, w, h int) float64 {
	w3 := w / 3
	a := img.Area(x+w3, y, x+2*w3, y+h)
	b := img.Area(x, y, x+w3, y+h) + img.Area(x+2*w3, y, x+w, y+h)
	return subtractLog(a, b)
}

type filterFunc func(img *rollingimage.Image, x, y, w, h int) float64

var filterTable = [...]filterFunc{filter0, filter1, filter2, filter3, filter4, filter5}

// Filter evaluates one of the six rectangle shapes at a fixed chroma
// offset (Y) and size (Width x Height), sliding only along the time
// axis at query time.
type Filter struct {
	kind   consts.FilterKind
	y      int
	height int
	width  int
}

// NewFilter builds a Filter from a literal spec, as found in a
// Configuration's classifier bank.
func NewFilter(spec consts.FilterSpec) Filter {
	return Filter{kind: spec.Kind, y: spec.Y, height: spec.Height, width: spec.Width}
}

// Width reports the number of time frames this filter spans, which is
// what bounds how much history a RollingIntegralImage must retain.
func (f Filter) Width() int {
	return f.width
}

// Apply evaluates the filter with its rectangle's time origin at x.
func (f Filter) Apply(img *rollingimage.Image, x int) float64 {
	return filterTable[f.kind](img, x, f.y, f.width, f.height)
}
