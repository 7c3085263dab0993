package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-signals/internal/types"
)

// ATR returns the Average True Range of the bars over the given period using
// Wilder's smoothing, aligned to the input. Entries before the first full
// window are NaN.
func ATR(bars []types.MarketData, period int) []float64 {
	out := nanSeries(len(bars))
	if period <= 0 || len(bars) < period+1 {
		return out
	}

	tr := trueRanges(bars)

	// Seed with the simple average of the first window of true ranges.
	atr := 0.0
	for i := 1; i <= period; i++ {
		atr += tr[i]
	}

	atr /= float64(period)
	out[period] = atr

	for i := period + 1; i < len(bars); i++ {
		atr = (atr*float64(period-1) + tr[i]) / float64(period)
		out[i] = atr
	}

	return out
}

// trueRanges returns the per-bar true range. The first bar has no previous
// close, so its entry is NaN.
func trueRanges(bars []types.MarketData) []float64 {
	tr := nanSeries(len(bars))
	for i := 1; i < len(bars); i++ {
		highLow := bars[i].High - bars[i].Low
		highClose := math.Abs(bars[i].High - bars[i-1].Close)
		lowClose := math.Abs(bars[i].Low - bars[i-1].Close)
		tr[i] = math.Max(highLow, math.Max(highClose, lowClose))
	}

	return tr
}
