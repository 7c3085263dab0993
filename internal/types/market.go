package types

import "time"

// MarketData represents a single OHLCV bar.
type MarketData struct {
	Time   time.Time `csv:"time"`
	Symbol string    `csv:"symbol"`
	Open   float64   `csv:"open"`
	High   float64   `csv:"high"`
	Low    float64   `csv:"low"`
	Close  float64   `csv:"close"`
	Volume float64   `csv:"volume"`
}

// Metadata identifies the instrument a price series belongs to. It is opaque
// to the signal engine and passed through to the output unchanged.
type Metadata struct {
	Pair      string `yaml:"pair" json:"pair"`
	Exchange  string `yaml:"exchange" json:"exchange"`
	Timeframe string `yaml:"timeframe" json:"timeframe"`
}

// ValidatePriceSeries checks that bars are ordered by strictly increasing
// timestamps with no duplicates. It returns the index of the first offending
// bar, or -1 if the series is well formed.
func ValidatePriceSeries(bars []MarketData) int {
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return i
		}
	}

	return -1
}
