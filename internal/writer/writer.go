package writer

import (
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// SignalWriter defines the interface for persisting an annotated signal table.
type SignalWriter interface {
	// Initialize sets up the writer, potentially creating files.
	Initialize() error
	// Write persists the annotated series.
	Write(series *types.SignalSeries) error
	// Finalize completes the writing process and returns the output path.
	Finalize() (outputPath string, err error)
	// Close releases any resources held by the writer.
	Close() error
	// GetOutputPath returns the configured output file path.
	GetOutputPath() string
}
