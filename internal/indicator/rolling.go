package indicator

// SMA returns the simple moving average of values over the given window,
// aligned to the input. Entries before the first full window are NaN.
func SMA(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 0 || len(values) < window {
		return out
	}

	sum := 0.0

	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}

		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}

	return out
}

// RollingMax returns, for each bar, the maximum of values over the lookback
// window ending at the previous bar. The current bar is excluded so that a
// close above the returned level is an actual breakout of prior highs.
// Entries without a full prior window are NaN.
func RollingMax(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 0 {
		return out
	}

	for i := window; i < len(values); i++ {
		max := values[i-window]
		for j := i - window + 1; j < i; j++ {
			if values[j] > max {
				max = values[j]
			}
		}

		out[i] = max
	}

	return out
}

// RollingMin is the mirror of RollingMax over prior lows.
func RollingMin(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 0 {
		return out
	}

	for i := window; i < len(values); i++ {
		min := values[i-window]
		for j := i - window + 1; j < i; j++ {
			if values[j] < min {
				min = values[j]
			}
		}

		out[i] = min
	}

	return out
}
