package indicator

import (
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// Params is the fixed parameter set for one indicator computation run.
type Params struct {
	EMAFastPeriod    int `yaml:"ema_fast_period" json:"ema_fast_period" jsonschema:"description=Fast EMA period,default=20" validate:"gt=0"`
	EMASlowPeriod    int `yaml:"ema_slow_period" json:"ema_slow_period" jsonschema:"description=Slow EMA period,default=50" validate:"gt=0"`
	RSIPeriod        int `yaml:"rsi_period" json:"rsi_period" jsonschema:"description=RSI period,default=14" validate:"gt=0"`
	MACDFastPeriod   int `yaml:"macd_fast_period" json:"macd_fast_period" jsonschema:"description=MACD fast period,default=12" validate:"gt=0"`
	MACDSlowPeriod   int `yaml:"macd_slow_period" json:"macd_slow_period" jsonschema:"description=MACD slow period,default=26" validate:"gt=0"`
	MACDSignalPeriod int `yaml:"macd_signal_period" json:"macd_signal_period" jsonschema:"description=MACD signal period,default=9" validate:"gt=0"`
	ADXPeriod        int `yaml:"adx_period" json:"adx_period" jsonschema:"description=ADX period,default=14" validate:"gt=0"`
	ATRPeriod        int `yaml:"atr_period" json:"atr_period" jsonschema:"description=ATR period,default=14" validate:"gt=0"`
	VolumeMAWindow   int `yaml:"volume_ma_window" json:"volume_ma_window" jsonschema:"description=Volume moving average window,default=20" validate:"gt=0"`
	ExtremaLookback  int `yaml:"extrema_lookback" json:"extrema_lookback" jsonschema:"description=Rolling high/low lookback window,default=20" validate:"gt=0"`
}

// DefaultParams returns the parameter set the strategy was tuned with.
func DefaultParams() Params {
	return Params{
		EMAFastPeriod:    20,
		EMASlowPeriod:    50,
		RSIPeriod:        14,
		MACDFastPeriod:   12,
		MACDSlowPeriod:   26,
		MACDSignalPeriod: 9,
		ADXPeriod:        14,
		ATRPeriod:        14,
		VolumeMAWindow:   20,
		ExtremaLookback:  20,
	}
}

// Validate checks that every period and window is a positive integer.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"ema_fast_period", p.EMAFastPeriod},
		{"ema_slow_period", p.EMASlowPeriod},
		{"rsi_period", p.RSIPeriod},
		{"macd_fast_period", p.MACDFastPeriod},
		{"macd_slow_period", p.MACDSlowPeriod},
		{"macd_signal_period", p.MACDSignalPeriod},
		{"adx_period", p.ADXPeriod},
		{"atr_period", p.ATRPeriod},
		{"volume_ma_window", p.VolumeMAWindow},
		{"extrema_lookback", p.ExtremaLookback},
	}

	for _, c := range checks {
		if c.value <= 0 {
			return errors.Newf(errors.ErrCodeInvalidPeriod, "%s must be a positive integer, got %d", c.name, c.value)
		}
	}

	return nil
}

// Compute derives one IndicatorRow per input bar. Bars with less history than
// an indicator's lookback get NaN for that column; short series never fail.
// The input is treated as immutable and is never reordered or modified.
func Compute(metadata types.Metadata, bars []types.MarketData, params Params) (types.IndicatorSeries, error) {
	if err := params.Validate(); err != nil {
		return types.IndicatorSeries{}, err
	}

	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	volumes := make([]float64, len(bars))

	for i, bar := range bars {
		closes[i] = bar.Close
		highs[i] = bar.High
		lows[i] = bar.Low
		volumes[i] = bar.Volume
	}

	emaFast := EMA(closes, params.EMAFastPeriod)
	emaSlow := EMA(closes, params.EMASlowPeriod)
	rsi := RSI(closes, params.RSIPeriod)
	macd := MACD(closes, params.MACDFastPeriod, params.MACDSlowPeriod, params.MACDSignalPeriod)
	adx := ADX(bars, params.ADXPeriod)
	atr := ATR(bars, params.ATRPeriod)
	volumeMA := SMA(volumes, params.VolumeMAWindow)
	highRecent := RollingMax(highs, params.ExtremaLookback)
	lowRecent := RollingMin(lows, params.ExtremaLookback)

	rows := make([]types.IndicatorRow, len(bars))
	for i := range bars {
		rows[i] = types.IndicatorRow{
			EMAFast:        emaFast[i],
			EMASlow:        emaSlow[i],
			RSI:            rsi[i],
			MACD:           macd.MACD[i],
			MACDSignal:     macd.Signal[i],
			MACDHist:       macd.Hist[i],
			ADX:            adx[i],
			ATR:            atr[i],
			VolumeMA:       volumeMA[i],
			HighRecent:     highRecent[i],
			LowRecent:      lowRecent[i],
			MomentumOffset: closes[i] - emaSlow[i],
		}
	}

	return types.IndicatorSeries{
		Metadata: metadata,
		Bars:     bars,
		Rows:     rows,
	}, nil
}
