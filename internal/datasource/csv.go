package datasource

import (
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// CSVDataSource loads OHLCV bars directly from a CSV file into memory.
// Suitable for small files; the DuckDB source handles large or Parquet data.
type CSVDataSource struct {
	logger *logger.Logger
	cache  []types.MarketData
}

// NewCSVDataSource creates an empty CSV data source.
func NewCSVDataSource(logger *logger.Logger) *CSVDataSource {
	return &CSVDataSource{
		logger: logger,
	}
}

// Initialize implements DataSource. Bars are sorted by ascending time after
// loading; duplicate timestamps are left in place for the engine to reject.
func (c *CSVDataSource) Initialize(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to open %s", path)
	}
	defer file.Close()

	var bars []types.MarketData
	if err := gocsv.UnmarshalFile(file, &bars); err != nil {
		return errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to parse %s", path)
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Time.Before(bars[j].Time)
	})

	c.cache = bars

	return nil
}

// ReadAll implements DataSource.
func (c *CSVDataSource) ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.MarketData, error) {
	if c.cache == nil {
		return nil, errors.New(errors.ErrCodeDataNotFound, "data source is not initialized")
	}

	result := make([]types.MarketData, 0, len(c.cache))

	for _, bar := range c.cache {
		if start.IsSome() && bar.Time.Before(start.Unwrap()) {
			continue
		}

		if end.IsSome() && bar.Time.After(end.Unwrap()) {
			continue
		}

		result = append(result, bar)
	}

	return result, nil
}

// Count implements DataSource.
func (c *CSVDataSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	bars, err := c.ReadAll(start, end)
	if err != nil {
		return 0, err
	}

	return len(bars), nil
}

// Close implements DataSource.
func (c *CSVDataSource) Close() error {
	c.cache = nil

	return nil
}
