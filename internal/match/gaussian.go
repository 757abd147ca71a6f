// Package match implements the fingerprint alignment and scoring used
// to find similar audio segments between two fingerprints.
package match

import "math"

// GaussianFilter approximates a Gaussian blur of the given sigma using
// n successive box-filter passes, per the classic boxcar approximation
// (Getreuer, "A Survey of Gaussian Convolution Algorithms"). The passes
// alternate between input and output, so input is overwritten with
// intermediate results; output must be a separate slice of the same
// length, not an alias of input.
func GaussianFilter(input, output []float64, sigma float64, n int) {
	w := int(math.Floor(math.Sqrt(12.0*sigma*sigma/float64(n) + 1.0)))
	wl := w
	if w%2 == 0 {
		wl = w - 1
	}
	wu := wl + 2

	fwl := float64(wl)
	nf := float64(n)
	m := int(math.Round((12.0*sigma*sigma - nf*fwl*fwl - 4.0*nf*fwl - 3.0*nf) / (-4.0*fwl - 4.0)))

	data1 := input
	data2 := output

	for i := 0; i < m; i++ {
		boxFilter(data1, data2, wl)
		data1, data2 = data2, data1
	}
	for i := m; i < n; i++ {
		boxFilter(data1, data2, wu)
		data1, data2 = data2, data1
	}

	if &data1[0] != &output[0] {
		copy(output, data1)
	}
}

func boxFilter(input []float64, output []float64, w int) {
	size := len(input)
	if w == 0 || size == 0 {
		return
	}

	wl := w / 2
	wr := w - wl

	it1 := newReflectIterator(size)
	it2 := newReflectIterator(size)

	for i := 0; i < wl; i++ {
		it1.moveBack()
		it2.moveBack()
	}

	sum := 0.0
	for i := 0; i < w; i++ {
		sum += input[it2.pos]
		it2.moveForward()
	}

	outIdx := 0
	push := func(v float64) {
		output[outIdx] = v
		outIdx++
	}

	if size > w {
		for i := 0; i < wl; i++ {
			push(sum / float64(w))
			sum += input[it2.pos] - input[it1.pos]
			it1.moveForward()
			it2.moveForward()
		}
		for i := 0; i < size-w-1; i++ {
			push(sum / float64(w))
			sum += input[it2.pos] - input[it1.pos]
			it2.pos++
			it1.pos++
		}
		for i := 0; i < wr+1; i++ {
			push(sum / float64(w))
			sum += input[it2.pos] - input[it1.pos]
			it1.moveForward()
			it2.moveForward()
		}
	} else {
		for i := 0; i < size; i++ {
			push(sum / float64(w))
			sum += input[it2.pos] - input[it1.pos]
			it1.moveForward()
			it2.moveForward()
		}
	}
}

// reflectIterator walks an index back and forth across [0, size), used
// to implement reflecting boundary conditions in the box filter.
type reflectIterator struct {
	size    int
	pos     int
	forward bool
}

func newReflectIterator(size int) *reflectIterator {
	return &reflectIterator{size: size, forward: true}
}

func (it *reflectIterator) moveForward() {
	if it.forward {
		if it.pos+1 == it.size {
			it.forward = false
		} else {
			it.pos++
		}
	} else if it.pos == 0 {
		it.forward = true
	} else {
		it.pos--
	}
}

func (it *reflectIterator) moveBack() {
	if it.forward {
		if it.pos == 0 {
			it.forward = false
		} else {
			it.pos--
		}
	} else if it.pos+1 == it.size {
		it.forward = true
	} else {
		it.pos++
	}
}
