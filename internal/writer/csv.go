package writer

import (
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// annotatedRow is the flat CSV representation of one output bar: the input
// columns, every indicator column, and the signal columns.
type annotatedRow struct {
	Time           time.Time         `csv:"time"`
	Symbol         string            `csv:"symbol"`
	Open           float64           `csv:"open"`
	High           float64           `csv:"high"`
	Low            float64           `csv:"low"`
	Close          float64           `csv:"close"`
	Volume         float64           `csv:"volume"`
	EMAFast        float64           `csv:"ema_fast"`
	EMASlow        float64           `csv:"ema_slow"`
	RSI            float64           `csv:"rsi"`
	MACD           float64           `csv:"macd"`
	MACDSignal     float64           `csv:"macd_signal"`
	MACDHist       float64           `csv:"macd_hist"`
	ADX            float64           `csv:"adx"`
	ATR            float64           `csv:"atr"`
	VolumeMA       float64           `csv:"vol_ma"`
	HighRecent     float64           `csv:"high_recent"`
	LowRecent      float64           `csv:"low_recent"`
	MomentumOffset float64           `csv:"momentum_offset"`
	Mode           types.MarketMode  `csv:"mode"`
	Entry          types.EntrySignal `csv:"enter"`
	Exit           types.ExitSignal  `csv:"exit"`
}

// CSVWriter writes the annotated table to a CSV file.
type CSVWriter struct {
	outputPath string
	file       *os.File
}

// NewCSVWriter creates a writer targeting the given output path.
func NewCSVWriter(outputPath string) *CSVWriter {
	return &CSVWriter{
		outputPath: outputPath,
	}
}

// Initialize implements SignalWriter.
func (w *CSVWriter) Initialize() error {
	file, err := os.Create(w.outputPath)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to create %s", w.outputPath)
	}

	w.file = file

	return nil
}

// Write implements SignalWriter.
func (w *CSVWriter) Write(series *types.SignalSeries) error {
	if w.file == nil {
		return errors.New(errors.ErrCodeWriteFailed, "writer is not initialized")
	}

	rows := make([]annotatedRow, series.Len())
	for i := range series.Bars {
		bar := series.Bars[i]
		ind := series.Indicators[i]
		sig := series.Signals[i]

		rows[i] = annotatedRow{
			Time:           bar.Time,
			Symbol:         bar.Symbol,
			Open:           bar.Open,
			High:           bar.High,
			Low:            bar.Low,
			Close:          bar.Close,
			Volume:         bar.Volume,
			EMAFast:        ind.EMAFast,
			EMASlow:        ind.EMASlow,
			RSI:            ind.RSI,
			MACD:           ind.MACD,
			MACDSignal:     ind.MACDSignal,
			MACDHist:       ind.MACDHist,
			ADX:            ind.ADX,
			ATR:            ind.ATR,
			VolumeMA:       ind.VolumeMA,
			HighRecent:     ind.HighRecent,
			LowRecent:      ind.LowRecent,
			MomentumOffset: ind.MomentumOffset,
			Mode:           sig.Mode,
			Entry:          sig.Entry,
			Exit:           sig.Exit,
		}
	}

	if err := gocsv.MarshalFile(&rows, w.file); err != nil {
		return errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to write %s", w.outputPath)
	}

	return nil
}

// Finalize implements SignalWriter.
func (w *CSVWriter) Finalize() (string, error) {
	if w.file == nil {
		return "", errors.New(errors.ErrCodeWriteFailed, "writer is not initialized")
	}

	if err := w.file.Sync(); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, "failed to flush output", err)
	}

	return w.outputPath, nil
}

// Close implements SignalWriter.
func (w *CSVWriter) Close() error {
	if w.file == nil {
		return nil
	}

	return w.file.Close()
}

// GetOutputPath implements SignalWriter.
func (w *CSVWriter) GetOutputPath() string {
	return w.outputPath
}
