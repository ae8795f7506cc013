package common

// Mean calculates the component-wise arithmetic mean of the given vectors
// and returns it along with a boolean indicating if the calculation was
// successful. All vectors must be non-empty and share the same length.
// A single vector is returned unchanged.
func Mean(vectors [][]float64) ([]float64, bool) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, false
	}
	if len(vectors) == 1 {
		return vectors[0], true
	}

	dims := len(vectors[0])
	for _, vec := range vectors {
		if len(vec) != dims {
			return nil, false
		}
	}

	mean := make([]float64, dims)
	for _, vec := range vectors {
		for i, v := range vec {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}

	return mean, true
}
