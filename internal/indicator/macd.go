package indicator

// MACDResult holds the three MACD output columns, each aligned to the input.
type MACDResult struct {
	MACD   []float64
	Signal []float64
	Hist   []float64
}

// MACD returns the Moving Average Convergence Divergence of values: the macd
// line (fast EMA minus slow EMA), its signal line (EMA of the macd line), and
// the histogram (macd minus signal). The macd line is NaN until the slow
// window is satisfied; signal and histogram additionally wait for the signal
// window over valid macd values.
func MACD(values []float64, fastPeriod, slowPeriod, signalPeriod int) MACDResult {
	n := len(values)
	result := MACDResult{
		MACD:   nanSeries(n),
		Signal: nanSeries(n),
		Hist:   nanSeries(n),
	}

	if fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 || n < slowPeriod {
		return result
	}

	fastEMA := EMA(values, fastPeriod)
	slowEMA := EMA(values, slowPeriod)

	for i := slowPeriod - 1; i < n; i++ {
		result.MACD[i] = fastEMA[i] - slowEMA[i]
	}

	// Signal line is an EMA over the valid region of the macd line.
	signalValid := EMA(result.MACD[slowPeriod-1:], signalPeriod)
	for i, v := range signalValid {
		result.Signal[slowPeriod-1+i] = v
	}

	for i := range result.Hist {
		result.Hist[i] = result.MACD[i] - result.Signal[i]
	}

	return result
}
