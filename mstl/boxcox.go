package mstl

import "math"

// boxCox writes the Box-Cox power transform of x into dst:
// (v^lambda - 1)/lambda, or ln(v) when lambda is zero.
func boxCox(x []float64, lambda float64, dst []float64) {
	if lambda != 0 {
		for i, v := range x {
			dst[i] = (math.Pow(v, lambda) - 1) / lambda
		}
		return
	}
	for i, v := range x {
		dst[i] = math.Log(v)
	}
}
