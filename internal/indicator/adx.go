package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-signals/internal/types"
)

// ADX returns the Average Directional Index of the bars over the given period
// using Wilder's smoothing, aligned to the input. Entries before the first
// full double window (2*period bars of history) are NaN. Results are bounded
// in [0, 100].
func ADX(bars []types.MarketData, period int) []float64 {
	out := nanSeries(len(bars))
	if period <= 0 || len(bars) < 2*period {
		return out
	}

	tr := trueRanges(bars)
	plusDM := make([]float64, len(bars))
	minusDM := make([]float64, len(bars))

	for i := 1; i < len(bars); i++ {
		upMove := bars[i].High - bars[i-1].High
		downMove := bars[i-1].Low - bars[i].Low

		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}

		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
	}

	// Initial Wilder sums over the first window.
	var smTR, smPlusDM, smMinusDM float64
	for i := 1; i <= period; i++ {
		smTR += tr[i]
		smPlusDM += plusDM[i]
		smMinusDM += minusDM[i]
	}

	dx := nanSeries(len(bars))
	dx[period] = dxValue(smPlusDM, smMinusDM, smTR)

	for i := period + 1; i < len(bars); i++ {
		smTR = smTR - smTR/float64(period) + tr[i]
		smPlusDM = smPlusDM - smPlusDM/float64(period) + plusDM[i]
		smMinusDM = smMinusDM - smMinusDM/float64(period) + minusDM[i]
		dx[i] = dxValue(smPlusDM, smMinusDM, smTR)
	}

	// First ADX is the simple average of the first window of DX values, then
	// Wilder smoothing takes over.
	adx := 0.0
	for i := period; i < 2*period; i++ {
		adx += dx[i]
	}

	adx /= float64(period)
	out[2*period-1] = adx

	for i := 2 * period; i < len(bars); i++ {
		adx = (adx*float64(period-1) + dx[i]) / float64(period)
		out[i] = adx
	}

	return out
}

// dxValue computes the directional index from smoothed directional movement
// and true range. Degenerate windows (zero true range or zero directional
// movement) yield 0 rather than NaN.
func dxValue(smPlusDM, smMinusDM, smTR float64) float64 {
	if smTR == 0 {
		return 0
	}

	plusDI := 100 * smPlusDM / smTR
	minusDI := 100 * smMinusDM / smTR

	sum := plusDI + minusDI
	if sum == 0 {
		return 0
	}

	return 100 * math.Abs(plusDI-minusDI) / sum
}
