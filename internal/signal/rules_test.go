package signal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

// makeSeries repeats one bar/row pair n times with increasing timestamps.
func makeSeries(bar types.MarketData, row types.IndicatorRow, n int) types.IndicatorSeries {
	bars := make([]types.MarketData, n)
	rows := make([]types.IndicatorRow, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		bars[i] = bar
		bars[i].Time = start.Add(time.Duration(i) * 5 * time.Minute)
		rows[i] = row
	}

	return types.IndicatorSeries{Bars: bars, Rows: rows}
}

// ungated returns the default parameters with the warm-up requirement removed,
// so single-bar rule behavior can be probed directly.
func ungated() Params {
	params := DefaultParams()
	params.WarmupBars = 0

	return params
}

func (suite *RulesTestSuite) TestEntryRules() {
	tests := []struct {
		name     string
		bar      types.MarketData
		row      types.IndicatorRow
		expected types.EntrySignal
	}{
		{
			name: "long breakout in strong uptrend",
			bar:  types.MarketData{Close: 106, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 30, ATR: 1, HighRecent: 105, LowRecent: 95,
				MACD: 1, MACDSignal: 0.5, EMASlow: 100, EMAFast: 102,
				VolumeMA: 1000, RSI: 55, MomentumOffset: 6,
			},
			expected: types.EntryLong,
		},
		{
			name: "short breakout in strong downtrend",
			bar:  types.MarketData{Close: 94, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 30, ATR: 1, HighRecent: 105, LowRecent: 95,
				MACD: -1, MACDSignal: -0.5, EMASlow: 100, EMAFast: 98,
				VolumeMA: 1000, RSI: 45, MomentumOffset: -6,
			},
			expected: types.EntryShort,
		},
		{
			name: "breakout rejected on thin volume",
			bar:  types.MarketData{Close: 106, Volume: 500},
			row: types.IndicatorRow{
				ADX: 30, ATR: 1, HighRecent: 105, LowRecent: 95,
				MACD: 1, MACDSignal: 0.5, EMASlow: 100, EMAFast: 102,
				VolumeMA: 1000, RSI: 55, MomentumOffset: 6,
			},
			expected: types.EntryNone,
		},
		{
			name: "breakout rejected below buffer",
			bar:  types.MarketData{Close: 105.5, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 30, ATR: 1, HighRecent: 105, LowRecent: 95,
				MACD: 1, MACDSignal: 0.5, EMASlow: 100, EMAFast: 102,
				VolumeMA: 1000, RSI: 55, MomentumOffset: 5.5,
			},
			expected: types.EntryNone,
		},
		{
			name: "range long on oversold dip",
			bar:  types.MarketData{Close: 101, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 15, RSI: 25, EMAFast: 100, EMASlow: 100,
				HighRecent: 110, LowRecent: 90, ATR: 1, VolumeMA: 1000,
			},
			expected: types.EntryLong,
		},
		{
			name: "range short on overbought pop",
			bar:  types.MarketData{Close: 99, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 15, RSI: 75, EMAFast: 100, EMASlow: 100,
				HighRecent: 110, LowRecent: 90, ATR: 1, VolumeMA: 1000,
			},
			expected: types.EntryShort,
		},
		{
			name: "consolidation long on loose oversold with macd confirmation",
			bar:  types.MarketData{Close: 99, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 15, RSI: 33, EMAFast: 100, EMASlow: 100,
				MACD: 1, MACDSignal: 0.5,
				HighRecent: 110, LowRecent: 90, ATR: 1, VolumeMA: 1000,
			},
			expected: types.EntryLong,
		},
		{
			name: "consolidation short on loose overbought with macd confirmation",
			bar:  types.MarketData{Close: 101, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 15, RSI: 67, EMAFast: 100, EMASlow: 100,
				MACD: -1, MACDSignal: -0.5,
				HighRecent: 110, LowRecent: 90, ATR: 1, VolumeMA: 1000,
			},
			expected: types.EntryShort,
		},
		{
			name: "neutral bar emits nothing",
			bar:  types.MarketData{Close: 100, Volume: 1000},
			row: types.IndicatorRow{
				ADX: 15, RSI: 50, EMAFast: 100, EMASlow: 100,
				HighRecent: 110, LowRecent: 90, ATR: 1, VolumeMA: 1000,
			},
			expected: types.EntryNone,
		},
		{
			name:     "warm-up bar with NaN indicators emits nothing",
			bar:      types.MarketData{Close: 100, Volume: 1000},
			row:      nanRow(),
			expected: types.EntryNone,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			series := makeSeries(tc.bar, tc.row, 1)

			result, err := Compute(series, ungated())
			suite.Require().NoError(err)
			suite.Require().Len(result.Signals, 1)
			suite.Equal(tc.expected, result.Signals[0].Entry)
		})
	}
}

func (suite *RulesTestSuite) TestExitRules() {
	tests := []struct {
		name     string
		bar      types.MarketData
		row      types.IndicatorRow
		expected types.ExitSignal
	}{
		{
			name:     "exit long below slow ema",
			bar:      types.MarketData{Close: 95},
			row:      types.IndicatorRow{EMASlow: 100, RSI: 50},
			expected: types.ExitLong,
		},
		{
			name:     "exit short above slow ema",
			bar:      types.MarketData{Close: 105},
			row:      types.IndicatorRow{EMASlow: 100, RSI: 50},
			expected: types.ExitShort,
		},
		{
			name:     "overbought above slow ema triggers both and resolves short",
			bar:      types.MarketData{Close: 105},
			row:      types.IndicatorRow{EMASlow: 100, RSI: 75},
			expected: types.ExitShort,
		},
		{
			name:     "oversold below slow ema triggers both and resolves short",
			bar:      types.MarketData{Close: 95},
			row:      types.IndicatorRow{EMASlow: 100, RSI: 25},
			expected: types.ExitShort,
		},
		{
			name:     "close exactly on slow ema with neutral rsi exits nothing",
			bar:      types.MarketData{Close: 100},
			row:      types.IndicatorRow{EMASlow: 100, RSI: 50},
			expected: types.ExitNone,
		},
		{
			name:     "warm-up bar with NaN indicators exits nothing",
			bar:      types.MarketData{Close: 100},
			row:      nanRow(),
			expected: types.ExitNone,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			series := makeSeries(tc.bar, tc.row, 1)

			result, err := Compute(series, ungated())
			suite.Require().NoError(err)
			suite.Require().Len(result.Signals, 1)
			suite.Equal(tc.expected, result.Signals[0].Exit)
		})
	}
}

// TestWarmupGatesEntriesOnly covers the minimum-history rule: a series shorter
// than WarmupBars never emits entries, no matter how loudly individual bars
// qualify, while exits keep firing.
func (suite *RulesTestSuite) TestWarmupGatesEntriesOnly() {
	bar := types.MarketData{Close: 101, Volume: 1000}
	row := types.IndicatorRow{
		ADX: 15, RSI: 25, EMAFast: 100, EMASlow: 100,
		HighRecent: 110, LowRecent: 90, ATR: 1, VolumeMA: 1000,
	}
	series := makeSeries(bar, row, 150)

	result, err := Compute(series, DefaultParams())
	suite.Require().NoError(err)
	suite.Require().Len(result.Signals, 150)

	for i, sig := range result.Signals {
		suite.Equal(types.EntryNone, sig.Entry, "entry at index %d", i)
		// close above slow EMA and oversold RSI both point at the short exit
		suite.Equal(types.ExitShort, sig.Exit, "exit at index %d", i)
	}

	// the same series one bar longer than the warm-up emits entries again
	long := makeSeries(bar, row, 200)

	result, err = Compute(long, DefaultParams())
	suite.Require().NoError(err)
	suite.Equal(types.EntryLong, result.Signals[0].Entry)
}

// TestEntryOverlapResolvesShort pins the overwrite order when a bar satisfies
// a long and a short rule at once. Compressed RSI thresholds make the range
// long and consolidation short windows overlap.
func (suite *RulesTestSuite) TestEntryOverlapResolvesShort() {
	params := ungated()
	params.RSIOversold = 60
	params.RSIOverbought = 61

	bar := types.MarketData{Close: 101, Volume: 1000}
	row := types.IndicatorRow{
		ADX: 10, RSI: 58, EMAFast: 100, EMASlow: 100,
		MACD: -1, MACDSignal: -0.5,
		HighRecent: 110, LowRecent: 90, ATR: 1, VolumeMA: 1000,
	}
	series := makeSeries(bar, row, 1)

	result, err := Compute(series, params)
	suite.Require().NoError(err)
	suite.Equal(types.EntryShort, result.Signals[0].Entry)
}

func (suite *RulesTestSuite) TestBreakoutScenarioOnlyFiresOnBreakoutBar() {
	base := types.MarketData{Close: 104, Volume: 1000}
	row := types.IndicatorRow{
		ADX: 30, RSI: 55, MACD: 1, MACDSignal: 0.5,
		ATR: 1, HighRecent: 105, LowRecent: 95,
		EMAFast: 103, EMASlow: 100, VolumeMA: 1000, MomentumOffset: 4,
	}
	series := makeSeries(base, row, 250)

	// a single bar clears the breakout buffer of 105 + 0.7*1
	breakoutAt := 230
	series.Bars[breakoutAt].Close = 106

	result, err := Compute(series, DefaultParams())
	suite.Require().NoError(err)

	for i, sig := range result.Signals {
		if i == breakoutAt {
			suite.Equal(types.EntryLong, sig.Entry, "breakout bar")
			suite.Equal(types.MarketModeStrongUp, sig.Mode, "breakout bar")

			continue
		}

		suite.Equal(types.EntryNone, sig.Entry, "index %d", i)
	}
}

func (suite *RulesTestSuite) TestMisalignedSeries() {
	series := makeSeries(types.MarketData{Close: 100}, types.IndicatorRow{}, 5)
	series.Rows = series.Rows[:4]

	_, err := Compute(series, DefaultParams())
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSeriesMisaligned))
}

func (suite *RulesTestSuite) TestParamsValidate() {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero oversold", func(p *Params) { p.RSIOversold = 0 }},
		{"overbought above 100", func(p *Params) { p.RSIOverbought = 100 }},
		{"inverted rsi band", func(p *Params) { p.RSIOversold = 70; p.RSIOverbought = 30 }},
		{"zero adx threshold", func(p *Params) { p.ADXThreshold = 0 }},
		{"negative breakout multiplier", func(p *Params) { p.BreakoutMultiplier = -0.7 }},
		{"zero volume multiplier", func(p *Params) { p.VolumeMultiplier = 0 }},
		{"negative warm-up", func(p *Params) { p.WarmupBars = -1 }},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			params := DefaultParams()
			tc.mutate(&params)
			suite.Error(params.Validate())
		})
	}

	suite.NoError(DefaultParams().Validate())
}

func nanRow() types.IndicatorRow {
	nan := math.NaN()

	return types.IndicatorRow{
		EMAFast: nan, EMASlow: nan, RSI: nan,
		MACD: nan, MACDSignal: nan, MACDHist: nan,
		ADX: nan, ATR: nan, VolumeMA: nan,
		HighRecent: nan, LowRecent: nan, MomentumOffset: nan,
	}
}
