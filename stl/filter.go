package stl

// movingAverage writes the centered moving averages of x[:n] with the given
// window length into ave, which receives n-length+1 values. Uses a running
// sum so the cost is independent of the window length.
func movingAverage(x []float64, n, length int, ave []float64) {
	newn := n - length + 1
	flen := float64(length)

	v := 0.0
	for i := 0; i < length; i++ {
		v += x[i]
	}
	ave[0] = v / flen

	k := length
	m := 0
	for j := 1; j < newn; j++ {
		v = v - x[m] + x[k]
		k++
		m++
		ave[j] = v / flen
	}
}

// lowPass applies the STL low-pass chain to x[:n]: three centered moving
// averages with window lengths period, period, and 3. The final averages land
// in out, which receives n-2*period values; work is scratch at least
// n-period+1 long.
func lowPass(x []float64, n, period int, out, work []float64) {
	movingAverage(x, n, period, out)
	movingAverage(out, n-period+1, period, work)
	movingAverage(work, n-2*period+2, 3, out)
}
