package indicator

import "math"

// EMA returns the exponential moving average of values over the given period,
// aligned to the input. Entries before the first full window are NaN.
//
// The first EMA value is seeded with the simple average of the initial window,
// then the recursive form EMA = value*alpha + EMA_prev*(1-alpha) is applied
// with alpha = 2/(period+1), matching the TA-Lib convention.
func EMA(values []float64, period int) []float64 {
	out := nanSeries(len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	// Seed with SMA of the first window.
	sma := 0.0
	for i := 0; i < period; i++ {
		sma += values[i]
	}

	sma /= float64(period)

	alpha := 2.0 / float64(period+1)

	ema := sma
	out[period-1] = ema

	for i := period; i < len(values); i++ {
		ema = values[i]*alpha + ema*(1-alpha)
		out[i] = ema
	}

	return out
}

// nanSeries allocates a slice of n NaN values.
func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}
