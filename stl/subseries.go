package stl

// seasonalSmooth runs the cycle-subseries step: the detrended series y[:n] is
// split into period interleaved subseries (subseries j holds indices j, j+p,
// j+2p, ...), each is loess-smoothed with the seasonal settings and extended
// by one extrapolated point before and after its observed range, and the
// smoothed subseries are interleaved back into season, which receives
// n+2*period values. Extended index i corresponds to original index i-period.
//
// sub, smoothed, subrw, and wres are scratch buffers at least n+2*period
// long.
func seasonalSmooth(y []float64, n, period, length, degree, jump int, userw bool, rw, season, sub, smoothed, subrw, wres []float64) {
	for j := 1; j <= period; j++ {
		m := (n-j)/period + 1
		for i := 0; i < m; i++ {
			sub[i] = y[i*period+j-1]
		}
		if userw {
			for i := 0; i < m; i++ {
				subrw[i] = rw[i*period+j-1]
			}
		}

		// smoothed[1..m] holds the fitted subseries, smoothed[0] and
		// smoothed[m+1] the extrapolated ends
		ess(sub, m, length, degree, jump, userw, subrw, smoothed[1:], wres)

		nright := min(length, m)
		if !est(sub, m, length, degree, 0.0, &smoothed[0], 1, nright, wres, userw, subrw) {
			smoothed[0] = smoothed[1]
		}
		nleft := max(1, m-length+1)
		if !est(sub, m, length, degree, float64(m+1), &smoothed[m+1], nleft, m, wres, userw, subrw) {
			smoothed[m+1] = smoothed[m]
		}

		for i := 0; i <= m+1; i++ {
			season[i*period+j-1] = smoothed[i]
		}
	}
}
