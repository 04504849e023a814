package stl

import "math"

// est computes a single loess estimate at position xs from the observations
// y[nleft-1 .. nright-1] (bounds are 1-based and inclusive, positions are the
// 1-based indices themselves). Tricube weights are scaled so they reach zero
// at the farthest point of the window and one at xs; when the window is wider
// than the data the scale is stretched by half the overhang in whole points,
// which is also
// what makes extrapolated positions (xs outside [1, n]) work. With degree 1 a
// weighted linear fit is evaluated at xs; a near-singular design matrix
// degrades to the weighted mean. Returns false when every weight is zero, in
// which case the caller falls back to the raw value.
func est(y []float64, n, length, degree int, xs float64, ys *float64, nleft, nright int, w []float64, userw bool, rw []float64) bool {
	xRange := float64(n) - 1.0
	h := math.Max(xs-float64(nleft), float64(nright)-xs)
	if length > n {
		// the overhang is truncated to whole points
		h += float64((length - n) / 2)
	}
	h9 := 0.999 * h
	h1 := 0.001 * h

	a := 0.0
	for j := nleft; j <= nright; j++ {
		w[j-1] = 0.0
		r := math.Abs(float64(j) - xs)
		if r <= h9 {
			if r <= h1 {
				w[j-1] = 1.0
			} else {
				rh := r / h
				cube := 1.0 - rh*rh*rh
				w[j-1] = cube * cube * cube
			}
			if userw {
				w[j-1] *= rw[j-1]
			}
			a += w[j-1]
		}
	}
	if a <= 0.0 {
		return false
	}

	for j := nleft; j <= nright; j++ {
		w[j-1] /= a
	}

	if h > 0.0 && degree > 0 {
		// weighted least squares: fold the slope term into the weights
		a = 0.0
		for j := nleft; j <= nright; j++ {
			a += w[j-1] * float64(j)
		}
		b := xs - a
		c := 0.0
		for j := nleft; j <= nright; j++ {
			d := float64(j) - a
			c += w[j-1] * d * d
		}
		if math.Sqrt(c) > 0.001*xRange {
			// points are spread out enough to compute the slope
			b /= c
			for j := nleft; j <= nright; j++ {
				w[j-1] *= b*(float64(j)-a) + 1.0
			}
		}
	}

	s := 0.0
	for j := nleft; j <= nright; j++ {
		s += w[j-1] * y[j-1]
	}
	*ys = s
	return true
}

// ess smooths the first n values of y into ys using windows of the given
// length. When jump > 1 only every jump-th position is estimated exactly and
// the positions between are linearly interpolated; the first and last
// positions are always estimated exactly. res is scratch space for the
// weights, at least n long.
func ess(y []float64, n, length, degree, jump int, userw bool, rw, ys, res []float64) {
	if n < 2 {
		ys[0] = y[0]
		return
	}

	newnj := min(jump, n-1)
	var nleft, nright int
	switch {
	case length >= n:
		nleft = 1
		nright = n
		for i := 1; i <= n; i += newnj {
			if !est(y, n, length, degree, float64(i), &ys[i-1], nleft, nright, res, userw, rw) {
				ys[i-1] = y[i-1]
			}
		}
	case newnj == 1:
		// sliding window, every point fitted
		nsh := (length + 1) / 2
		nleft = 1
		nright = length
		for i := 1; i <= n; i++ {
			if i > nsh && nright != n {
				nleft++
				nright++
			}
			if !est(y, n, length, degree, float64(i), &ys[i-1], nleft, nright, res, userw, rw) {
				ys[i-1] = y[i-1]
			}
		}
	default:
		nsh := (length + 1) / 2
		for i := 1; i <= n; i += newnj {
			switch {
			case i < nsh:
				nleft = 1
				nright = length
			case i >= n-nsh+1:
				nleft = n - length + 1
				nright = n
			default:
				nleft = i - nsh + 1
				nright = length + i - nsh
			}
			if !est(y, n, length, degree, float64(i), &ys[i-1], nleft, nright, res, userw, rw) {
				ys[i-1] = y[i-1]
			}
		}
	}

	if newnj == 1 {
		return
	}
	for i := 1; i+newnj <= n; i += newnj {
		delta := (ys[i+newnj-1] - ys[i-1]) / float64(newnj)
		for j := i + 1; j < i+newnj; j++ {
			ys[j-1] = ys[i-1] + delta*float64(j-i)
		}
	}
	k := ((n-1)/newnj)*newnj + 1
	if k != n {
		// the stride missed the last position; fit it exactly and
		// interpolate the gap
		if !est(y, n, length, degree, float64(n), &ys[n-1], nleft, nright, res, userw, rw) {
			ys[n-1] = y[n-1]
		}
		if k != n-1 {
			delta := (ys[n-1] - ys[k-1]) / float64(n-k)
			for j := k + 1; j < n; j++ {
				ys[j-1] = ys[k-1] + delta*float64(j-k)
			}
		}
	}
}
