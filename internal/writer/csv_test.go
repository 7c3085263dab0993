package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-signals/internal/engine"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/mocks"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

type CSVWriterTestSuite struct {
	suite.Suite
	series types.SignalSeries
}

func TestCSVWriterSuite(t *testing.T) {
	suite.Run(t, new(CSVWriterTestSuite))
}

func (suite *CSVWriterTestSuite) SetupSuite() {
	eng := engine.NewSignalEngineV1()
	suite.Require().NoError(eng.Initialize(""))

	gen := mocks.NewDataGenerator(11)
	bars := gen.GenerateTrending("BTC/USDT", 250, 0.2)

	series, err := eng.Run(types.Metadata{Pair: "BTC/USDT", Timeframe: "5m"}, bars)
	suite.Require().NoError(err)
	suite.series = series
}

func (suite *CSVWriterTestSuite) TestWriteRoundTrip() {
	path := filepath.Join(suite.T().TempDir(), "signals.csv")
	w := NewCSVWriter(path)

	suite.Require().NoError(w.Initialize())
	suite.Require().NoError(w.Write(&suite.series))

	outputPath, err := w.Finalize()
	suite.Require().NoError(err)
	suite.Equal(path, outputPath)
	suite.Require().NoError(w.Close())

	raw, err := os.ReadFile(path)
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	// header plus one line per bar
	suite.Len(lines, suite.series.Len()+1)

	header := lines[0]
	for _, column := range []string{"time", "close", "ema_fast", "rsi", "macd_hist", "high_recent", "mode", "enter", "exit"} {
		suite.Contains(header, column)
	}

	// warm-up bars serialize their indicator columns as NaN
	suite.Contains(lines[1], "NaN")
}

func (suite *CSVWriterTestSuite) TestWriteBeforeInitialize() {
	w := NewCSVWriter(filepath.Join(suite.T().TempDir(), "signals.csv"))

	err := w.Write(&suite.series)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeWriteFailed))

	_, err = w.Finalize()
	suite.True(errors.HasCode(err, errors.ErrCodeWriteFailed))

	// closing an uninitialized writer is a no-op
	suite.NoError(w.Close())
}

func (suite *CSVWriterTestSuite) TestInitializeBadPath() {
	w := NewCSVWriter(filepath.Join(suite.T().TempDir(), "missing", "signals.csv"))

	err := w.Initialize()
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeWriteFailed))
}

func (suite *CSVWriterTestSuite) TestGetOutputPath() {
	w := NewCSVWriter("/tmp/out.csv")
	suite.Equal("/tmp/out.csv", w.GetOutputPath())

	var _ SignalWriter = w
}

func (suite *CSVWriterTestSuite) TestWriteEmptySeries() {
	path := filepath.Join(suite.T().TempDir(), "empty.csv")
	w := NewCSVWriter(path)

	suite.Require().NoError(w.Initialize())
	suite.Require().NoError(w.Write(&types.SignalSeries{}))
	suite.Require().NoError(w.Close())

	raw, err := os.ReadFile(path)
	suite.Require().NoError(err)
	// header only
	suite.Contains(string(raw), "time")
}
