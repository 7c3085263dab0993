package types

type IndicatorType string

const (
	IndicatorTypeEMAFast        IndicatorType = "ema_fast"
	IndicatorTypeEMASlow        IndicatorType = "ema_slow"
	IndicatorTypeRSI            IndicatorType = "rsi"
	IndicatorTypeMACD           IndicatorType = "macd"
	IndicatorTypeMACDSignal     IndicatorType = "macd_signal"
	IndicatorTypeMACDHist       IndicatorType = "macd_hist"
	IndicatorTypeADX            IndicatorType = "adx"
	IndicatorTypeATR            IndicatorType = "atr"
	IndicatorTypeVolumeMA       IndicatorType = "vol_ma"
	IndicatorTypeHighRecent     IndicatorType = "high_recent"
	IndicatorTypeLowRecent      IndicatorType = "low_recent"
	IndicatorTypeMomentumOffset IndicatorType = "momentum_offset"
)

// IndicatorRow holds all indicator values for a single bar, aligned 1:1 with
// the input price series. Values are NaN until the corresponding lookback
// window is satisfied.
type IndicatorRow struct {
	EMAFast        float64 `csv:"ema_fast"`
	EMASlow        float64 `csv:"ema_slow"`
	RSI            float64 `csv:"rsi"`
	MACD           float64 `csv:"macd"`
	MACDSignal     float64 `csv:"macd_signal"`
	MACDHist       float64 `csv:"macd_hist"`
	ADX            float64 `csv:"adx"`
	ATR            float64 `csv:"atr"`
	VolumeMA       float64 `csv:"vol_ma"`
	HighRecent     float64 `csv:"high_recent"`
	LowRecent      float64 `csv:"low_recent"`
	MomentumOffset float64 `csv:"momentum_offset"`
}

// IndicatorSeries is the derived indicator table for a price series. Bars and
// Rows always have identical length and alignment.
type IndicatorSeries struct {
	Metadata Metadata
	Bars     []MarketData
	Rows     []IndicatorRow
}

// Len returns the number of bars in the series.
func (s *IndicatorSeries) Len() int {
	return len(s.Bars)
}
