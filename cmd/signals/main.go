package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-signals/internal/datasource"
	"github.com/rxtech-lab/argo-signals/internal/engine"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/rxtech-lab/argo-signals/internal/writer"
)

// runAction is the core logic of the run command. It loads the config, opens
// a data source per input file, runs the signal engine, and writes one
// annotated CSV per input.
func runAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	outputDir := cmd.String("output")
	pair := cmd.String("pair")
	timeframe := cmd.String("timeframe")
	sourceFlag := cmd.String("source")
	inputs := cmd.Args().Slice()

	if len(inputs) == 0 {
		return fmt.Errorf("at least one price data file is required")
	}

	configYAML := ""

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		configYAML = string(raw)
	}

	eng := engine.NewSignalEngineV1()
	if err := eng.Initialize(configYAML); err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var start, end optional.Option[time.Time]
	if t := cmd.Timestamp("start"); !t.IsZero() {
		start = optional.Some(t)
	}

	if t := cmd.Timestamp("end"); !t.IsZero() {
		end = optional.Some(t)
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	bar := progressbar.Default(int64(len(inputs)), "computing signals")

	for _, input := range inputs {
		if err := processFile(eng, appLogger, input, outputDir, pair, timeframe, sourceFlag, start, end); err != nil {
			return fmt.Errorf("failed to process %s: %w", input, err)
		}

		_ = bar.Add(1)
	}

	return nil
}

// processFile runs the engine over a single price file.
func processFile(eng *engine.SignalEngineV1, appLogger *logger.Logger, input, outputDir, pair, timeframe, sourceFlag string, start, end optional.Option[time.Time]) error {
	source, err := newDataSource(sourceFlag, input, appLogger)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := source.Initialize(input); err != nil {
		return err
	}

	bars, err := source.ReadAll(start, end)
	if err != nil {
		return err
	}

	metadata := types.Metadata{
		Pair:      pair,
		Timeframe: timeframe,
	}

	series, err := eng.Run(metadata, bars)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	outputPath := filepath.Join(outputDir, base+"_signals.csv")

	out := writer.NewCSVWriter(outputPath)
	if err := out.Initialize(); err != nil {
		return err
	}
	defer out.Close()

	if err := out.Write(&series); err != nil {
		return err
	}

	if _, err := out.Finalize(); err != nil {
		return err
	}

	return nil
}

// newDataSource picks the loader for an input file. Parquet always goes
// through DuckDB; CSV defaults to the in-memory loader unless overridden.
func newDataSource(sourceFlag, input string, appLogger *logger.Logger) (datasource.DataSource, error) {
	useDuckDB := sourceFlag == "duckdb" || strings.HasSuffix(input, ".parquet")
	if useDuckDB {
		return datasource.NewDuckDBDataSource("", appLogger)
	}

	return datasource.NewCSVDataSource(appLogger), nil
}

// schemaAction generates the config JSON schema and a sample YAML config.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	outputDir := cmd.String("output")

	config := engine.EmptyConfig()

	schemaJSON, err := config.GenerateSchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	schemaName := "signal-engine-v1-config.json"
	schemaPath := filepath.Join(outputDir, schemaName)

	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	samplePath := filepath.Join(outputDir, "signal-engine-v1-config.yaml")
	if _, err := os.Stat(samplePath); os.IsNotExist(err) {
		sampleYAML, err := yaml.Marshal(engine.DefaultConfig())
		if err != nil {
			return fmt.Errorf("failed to marshal sample config: %w", err)
		}

		sampleYAML = append([]byte("# yaml-language-server: $schema="+schemaName+"\n"), sampleYAML...)
		if err := os.WriteFile(samplePath, sampleYAML, 0644); err != nil {
			return fmt.Errorf("failed to write sample config: %w", err)
		}

		log.Printf("Sample config generated at %s", samplePath)
	}

	log.Printf("Schema generated at %s", schemaPath)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "signals",
		Usage:   "Compute breakout/trend entry and exit signals over OHLCV price files",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Annotate one or more price files with indicators and signals",
				ArgsUsage: "FILE [FILE...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the engine YAML config. Defaults are used when omitted.",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory for annotated output files",
						Value:   "results",
					},
					&cli.StringFlag{
						Name:  "pair",
						Usage: "Instrument pair recorded in the output metadata",
					},
					&cli.StringFlag{
						Name:  "timeframe",
						Usage: "Bar timeframe recorded in the output metadata",
						Value: "5m",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Data loader to use (csv, duckdb). Parquet inputs always use duckdb.",
						Value: "csv",
					},
					&cli.TimestampFlag{
						Name:    "start",
						Aliases: []string{"s"},
						Usage:   "Only process bars at or after this time (`YYYY-MM-DD`)",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02", time.RFC3339},
						},
					},
					&cli.TimestampFlag{
						Name:    "end",
						Aliases: []string{"e"},
						Usage:   "Only process bars at or before this time (`YYYY-MM-DD`)",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02", time.RFC3339},
						},
					},
				},
				Action: runAction,
			},
			{
				Name:  "schema",
				Usage: "Generate the config JSON schema and a sample YAML config",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory for generated files",
						Value:   "config",
					},
				},
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
