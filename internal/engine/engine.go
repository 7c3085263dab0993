package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/signal"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// SignalEngineV1 derives per-bar indicators and entry/exit signals from a
// historical price series. Each Run is an independent batch transform over
// an in-memory table; the engine keeps no state between runs beyond its
// configuration, so concurrent runs on independent inputs are safe.
type SignalEngineV1 struct {
	config      Config
	log         *logger.Logger
	initialized bool
}

// NewSignalEngineV1 creates an uninitialized engine. Initialize must be
// called with a YAML config before any computation.
func NewSignalEngineV1() *SignalEngineV1 {
	return &SignalEngineV1{}
}

// Name returns the engine identifier.
func (e *SignalEngineV1) Name() string {
	return "signal_engine_v1"
}

// Initialize parses and validates the YAML config and sets up logging.
func (e *SignalEngineV1) Initialize(config string) error {
	parsed, err := ParseConfig(config)
	if err != nil {
		return err
	}

	e.config = parsed

	var loggerErr error

	e.log, loggerErr = logger.NewLogger()
	if loggerErr != nil {
		return loggerErr
	}

	e.log.Debug("Signal engine initialized",
		zap.String("schema_version", parsed.SchemaVersion),
	)

	e.initialized = true

	return nil
}

// SetLogger replaces the engine logger. Intended for tests.
func (e *SignalEngineV1) SetLogger(log *logger.Logger) {
	e.log = log
}

// Config returns the active configuration.
func (e *SignalEngineV1) Config() Config {
	return e.config
}

// ComputeIndicators derives the indicator table for a price series. The
// series must carry strictly increasing timestamps; the metadata record is
// passed through untouched.
func (e *SignalEngineV1) ComputeIndicators(metadata types.Metadata, bars []types.MarketData) (types.IndicatorSeries, error) {
	if !e.initialized {
		return types.IndicatorSeries{}, errors.New(errors.ErrCodeEngineNotInitialized, "engine is not initialized")
	}

	if idx := types.ValidatePriceSeries(bars); idx >= 0 {
		return types.IndicatorSeries{}, errors.Newf(errors.ErrCodeNonMonotonicTimestamps,
			"price series timestamps must be strictly increasing, violation at bar %d (%s)", idx, bars[idx].Time)
	}

	return indicator.Compute(metadata, bars, e.config.Indicator)
}

// ComputeSignals evaluates the entry/exit rules over an indicator series.
func (e *SignalEngineV1) ComputeSignals(series types.IndicatorSeries) (types.SignalSeries, error) {
	if !e.initialized {
		return types.SignalSeries{}, errors.New(errors.ErrCodeEngineNotInitialized, "engine is not initialized")
	}

	return signal.Compute(series, e.config.Signal)
}

// Run composes ComputeIndicators and ComputeSignals over a price series and
// returns the fully annotated table.
func (e *SignalEngineV1) Run(metadata types.Metadata, bars []types.MarketData) (types.SignalSeries, error) {
	if !e.initialized {
		return types.SignalSeries{}, errors.New(errors.ErrCodeEngineNotInitialized, "engine is not initialized")
	}

	runID := uuid.New().String()

	e.log.Info("Signal run started",
		zap.String("run_id", runID),
		zap.String("pair", metadata.Pair),
		zap.Int("bars", len(bars)),
	)

	indicators, err := e.ComputeIndicators(metadata, bars)
	if err != nil {
		e.log.Error("Indicator computation failed",
			zap.String("run_id", runID),
			zap.Error(err),
		)

		return types.SignalSeries{}, err
	}

	signals, err := e.ComputeSignals(indicators)
	if err != nil {
		e.log.Error("Signal computation failed",
			zap.String("run_id", runID),
			zap.Error(err),
		)

		return types.SignalSeries{}, err
	}

	longCount, shortCount := 0, 0

	for _, row := range signals.Signals {
		switch row.Entry {
		case types.EntryLong:
			longCount++
		case types.EntryShort:
			shortCount++
		}
	}

	e.log.Info("Signal run finished",
		zap.String("run_id", runID),
		zap.Int("long_entries", longCount),
		zap.Int("short_entries", shortCount),
	)

	return signals, nil
}
