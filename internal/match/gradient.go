package match

// Gradient computes the central-difference gradient of data, matching
// the boundary handling of a three-point stencil: interior points use
// (data[i+1]-data[i-1])/2, while the first and last points fall back to
// a one-sided difference. Short inputs (0, 1 or 2 elements) are handled
// as special cases since the stencil has no room to operate.
func Gradient(data []float64) []float64 {
	n := len(data)
	out := make([]float64, n)

	switch n {
	case 0:
		return out
	case 1:
		out[0] = 0
		return out
	case 2:
		d := data[1] - data[0]
		out[0] = d
		out[1] = d
		return out
	}

	out[0] = data[1] - data[0]
	for i := 1; i < n-1; i++ {
		out[i] = (data[i+1] - data[i-1]) / 2
	}
	out[n-1] = data[n-1] - data[n-2]
	return out
}
