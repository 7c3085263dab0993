package signal

import "github.com/rxtech-lab/argo-signals/internal/types"

// ClassifyMode labels a bar's market regime from its trend strength and
// price-vs-trend-baseline offset. Bars whose indicators are still NaN fall
// through the comparisons into the consolidation label, mirroring what the
// rule conditions themselves would evaluate to.
func ClassifyMode(row types.IndicatorRow, adxThreshold float64) types.MarketMode {
	if row.ADX >= adxThreshold {
		if row.MomentumOffset > 0 {
			return types.MarketModeStrongUp
		}

		return types.MarketModeStrongDown
	}

	if row.RSI > 40 && row.RSI < 60 {
		return types.MarketModeRange
	}

	return types.MarketModeConsolidation
}
