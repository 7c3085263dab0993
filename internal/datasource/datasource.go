package datasource

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-signals/internal/types"
)

// DataSource loads historical OHLCV bars from a local file. Implementations
// return bars ordered by ascending time; validating strict monotonicity is
// the engine's job so that every loader shares the same failure mode.
type DataSource interface {
	// Initialize loads or registers the price data at the given path.
	Initialize(path string) error
	// ReadAll returns all bars, optionally restricted to a time range.
	ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.MarketData, error)
	// Count returns the number of bars, optionally restricted to a time range.
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
	// Close releases any resources held by the data source.
	Close() error
}
