package types

// EntrySignal is a ternary per-bar entry classification.
type EntrySignal int

const (
	// EntryShort is a signal to open a short position
	EntryShort EntrySignal = -1
	// EntryNone is the neutral entry signal
	EntryNone EntrySignal = 0
	// EntryLong is a signal to open a long position
	EntryLong EntrySignal = 1
)

// ExitSignal is a ternary per-bar exit classification.
type ExitSignal int

const (
	// ExitShort is a signal to close a short position
	ExitShort ExitSignal = -1
	// ExitNone is the neutral exit signal
	ExitNone ExitSignal = 0
	// ExitLong is a signal to close a long position
	ExitLong ExitSignal = 1
)

// MarketMode labels the regime a bar belongs to. The label is descriptive;
// the rules engine derives its conditions from the same indicator values
// rather than branching on the mode.
type MarketMode string

const (
	MarketModeStrongUp      MarketMode = "strong_up"
	MarketModeStrongDown    MarketMode = "strong_down"
	MarketModeRange         MarketMode = "range"
	MarketModeConsolidation MarketMode = "consolidation"
)

// SignalRow holds the per-bar entry and exit classification. Entry and exit
// are computed independently and may conflict in the same bar; resolving the
// conflict is the host engine's responsibility.
type SignalRow struct {
	Mode  MarketMode  `csv:"mode"`
	Entry EntrySignal `csv:"enter"`
	Exit  ExitSignal  `csv:"exit"`
}

// SignalSeries is the final annotated table: input bars, indicator columns,
// and entry/exit columns, all index aligned.
type SignalSeries struct {
	Metadata   Metadata
	Bars       []MarketData
	Indicators []IndicatorRow
	Signals    []SignalRow
}

// Len returns the number of bars in the series.
func (s *SignalSeries) Len() int {
	return len(s.Bars)
}
