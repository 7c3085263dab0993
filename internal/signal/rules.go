package signal

import (
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// Params is the fixed parameter set for the rules engine.
type Params struct {
	RSIOversold        float64 `yaml:"rsi_oversold" json:"rsi_oversold" jsonschema:"description=RSI oversold threshold,default=30" validate:"gt=0,lt=100"`
	RSIOverbought      float64 `yaml:"rsi_overbought" json:"rsi_overbought" jsonschema:"description=RSI overbought threshold,default=70" validate:"gt=0,lt=100"`
	ADXThreshold       float64 `yaml:"adx_threshold" json:"adx_threshold" jsonschema:"description=ADX level above which the market counts as trending,default=25" validate:"gt=0"`
	BreakoutMultiplier float64 `yaml:"breakout_multiplier" json:"breakout_multiplier" jsonschema:"description=ATR multiplier sizing the breakout buffer,default=0.7" validate:"gt=0"`
	VolumeMultiplier   float64 `yaml:"volume_multiplier" json:"volume_multiplier" jsonschema:"description=Minimum volume as a fraction of its moving average,default=0.8" validate:"gt=0"`
	WarmupBars         int     `yaml:"warmup_bars" json:"warmup_bars" jsonschema:"description=Minimum series length before entry signals are emitted,default=200" validate:"gte=0"`
}

// DefaultParams returns the parameter set the strategy was tuned with.
func DefaultParams() Params {
	return Params{
		RSIOversold:        30,
		RSIOverbought:      70,
		ADXThreshold:       25,
		BreakoutMultiplier: 0.7,
		VolumeMultiplier:   0.8,
		WarmupBars:         200,
	}
}

// Validate checks the threshold parameters for basic sanity.
func (p Params) Validate() error {
	if p.RSIOversold <= 0 || p.RSIOversold >= 100 {
		return errors.Newf(errors.ErrCodeInvalidThreshold, "rsi_oversold must be in (0, 100), got %v", p.RSIOversold)
	}

	if p.RSIOverbought <= 0 || p.RSIOverbought >= 100 {
		return errors.Newf(errors.ErrCodeInvalidThreshold, "rsi_overbought must be in (0, 100), got %v", p.RSIOverbought)
	}

	if p.RSIOversold >= p.RSIOverbought {
		return errors.Newf(errors.ErrCodeInvalidThreshold, "rsi_oversold (%v) must be below rsi_overbought (%v)", p.RSIOversold, p.RSIOverbought)
	}

	if p.ADXThreshold <= 0 {
		return errors.Newf(errors.ErrCodeInvalidThreshold, "adx_threshold must be positive, got %v", p.ADXThreshold)
	}

	if p.BreakoutMultiplier <= 0 {
		return errors.Newf(errors.ErrCodeInvalidMultiplier, "breakout_multiplier must be positive, got %v", p.BreakoutMultiplier)
	}

	if p.VolumeMultiplier <= 0 {
		return errors.Newf(errors.ErrCodeInvalidMultiplier, "volume_multiplier must be positive, got %v", p.VolumeMultiplier)
	}

	if p.WarmupBars < 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "warmup_bars must not be negative, got %d", p.WarmupBars)
	}

	return nil
}

// Compute evaluates the entry and exit rules for every bar of an indicator
// series and returns the annotated signal series.
//
// Entry and exit are evaluated independently per bar. For each of them the
// long conditions are assigned first and the short conditions second, so a
// bar that somehow satisfies both ends up short. The conditions are designed
// to be mutually exclusive under normal data; the overwrite order is kept for
// parity with the original rule table rather than as an intentional priority.
//
// When the whole series is shorter than WarmupBars, every entry is forced to
// neutral. Exits are not gated: with insufficient history their indicator
// inputs are NaN and every comparison already evaluates to false.
func Compute(series types.IndicatorSeries, params Params) (types.SignalSeries, error) {
	if err := params.Validate(); err != nil {
		return types.SignalSeries{}, err
	}

	if len(series.Bars) != len(series.Rows) {
		return types.SignalSeries{}, errors.Newf(errors.ErrCodeSeriesMisaligned,
			"indicator series misaligned: %d bars, %d rows", len(series.Bars), len(series.Rows))
	}

	signals := make([]types.SignalRow, len(series.Bars))
	warm := len(series.Bars) >= params.WarmupBars

	for i := range series.Bars {
		bar := series.Bars[i]
		row := series.Rows[i]

		signals[i].Mode = ClassifyMode(row, params.ADXThreshold)

		if warm {
			signals[i].Entry = evaluateEntry(bar, row, params)
		}

		signals[i].Exit = evaluateExit(bar, row, params)
	}

	return types.SignalSeries{
		Metadata:   series.Metadata,
		Bars:       series.Bars,
		Indicators: series.Rows,
		Signals:    signals,
	}, nil
}

// evaluateEntry applies the per-regime entry rule table to one bar. NaN in
// any indicator input makes the affected comparisons false, so bars inside a
// lookback warm-up never trigger.
func evaluateEntry(bar types.MarketData, row types.IndicatorRow, params Params) types.EntrySignal {
	trending := row.ADX >= params.ADXThreshold
	ranging := row.ADX < params.ADXThreshold
	volumeOK := bar.Volume >= row.VolumeMA*params.VolumeMultiplier
	macdBullish := row.MACD > row.MACDSignal
	macdBearish := row.MACD < row.MACDSignal

	longBreakout := bar.Close > row.HighRecent+row.ATR*params.BreakoutMultiplier &&
		macdBullish &&
		bar.Close > row.EMASlow &&
		volumeOK &&
		trending

	shortBreakout := bar.Close < row.LowRecent-row.ATR*params.BreakoutMultiplier &&
		macdBearish &&
		bar.Close < row.EMASlow &&
		volumeOK &&
		trending

	rangeLong := ranging &&
		row.RSI <= params.RSIOversold &&
		bar.Close > row.EMAFast

	rangeShort := ranging &&
		row.RSI >= params.RSIOverbought &&
		bar.Close < row.EMAFast

	// Consolidation entries accept slightly looser RSI extremes but demand
	// MACD confirmation.
	consolidationLong := ranging &&
		row.RSI <= params.RSIOversold+5 &&
		macdBullish

	consolidationShort := ranging &&
		row.RSI >= params.RSIOverbought-5 &&
		macdBearish

	entry := types.EntryNone

	if longBreakout || rangeLong || consolidationLong {
		entry = types.EntryLong
	}

	if shortBreakout || rangeShort || consolidationShort {
		entry = types.EntryShort
	}

	return entry
}

// evaluateExit applies the exit rules to one bar. A bar satisfying both
// directions ends up with the short exit, same overwrite order as entries.
func evaluateExit(bar types.MarketData, row types.IndicatorRow, params Params) types.ExitSignal {
	exitLong := bar.Close < row.EMASlow || row.RSI >= params.RSIOverbought
	exitShort := bar.Close > row.EMASlow || row.RSI <= params.RSIOversold

	exit := types.ExitNone

	if exitLong {
		exit = types.ExitLong
	}

	if exitShort {
		exit = types.ExitShort
	}

	return exit
}
