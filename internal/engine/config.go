package engine

import (
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/signal"
	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/rxtech-lab/argo-signals/pkg/utils"
)

// RiskConfig carries the order-management percentages the host engine
// evaluates. The signal engine only parses and passes them through; nothing
// in this module acts on them.
type RiskConfig struct {
	Stoploss                    float64            `yaml:"stoploss" json:"stoploss" jsonschema:"description=Stoploss as a signed fraction,default=-0.05"`
	MinimalROI                  map[string]float64 `yaml:"minimal_roi" json:"minimal_roi" jsonschema:"description=Minimal ROI table keyed by minutes held"`
	TrailingStop                bool               `yaml:"trailing_stop" json:"trailing_stop" jsonschema:"description=Enable trailing stop,default=true"`
	TrailingStopPositive        float64            `yaml:"trailing_stop_positive" json:"trailing_stop_positive" jsonschema:"description=Trailing distance once in profit,default=0.01"`
	TrailingStopPositiveOffset  float64            `yaml:"trailing_stop_positive_offset" json:"trailing_stop_positive_offset" jsonschema:"description=Profit offset before trailing activates,default=0.02"`
	TrailingOnlyOffsetIsReached bool               `yaml:"trailing_only_offset_is_reached" json:"trailing_only_offset_is_reached" jsonschema:"description=Trail only after the offset is reached,default=true"`
}

// Config is the full configuration surface of the signal engine.
type Config struct {
	SchemaVersion string           `yaml:"schema_version" json:"schema_version" jsonschema:"description=Config schema version,default=1.0.0" validate:"required"`
	Indicator     indicator.Params `yaml:"indicator" json:"indicator"`
	Signal        signal.Params    `yaml:"signal" json:"signal"`
	Risk          RiskConfig       `yaml:"risk" json:"risk"`
}

// DefaultConfig returns the configuration matching the strategy's published
// tuning.
func DefaultConfig() Config {
	return Config{
		SchemaVersion: version.SchemaVersion,
		Indicator:     indicator.DefaultParams(),
		Signal:        signal.DefaultParams(),
		Risk: RiskConfig{
			Stoploss: -0.05,
			MinimalROI: map[string]float64{
				"0":   0.03,
				"30":  0.02,
				"120": 0.01,
			},
			TrailingStop:                true,
			TrailingStopPositive:        0.01,
			TrailingStopPositiveOffset:  0.02,
			TrailingOnlyOffsetIsReached: true,
		},
	}
}

// EmptyConfig returns a zero-valued config for schema generation.
func EmptyConfig() Config {
	return Config{}
}

// ParseConfig parses a YAML config document, fills unset sections with
// defaults, and validates the result.
func ParseConfig(raw string) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal([]byte(raw), &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeEngineConfigError, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks struct tags, the per-section parameter invariants, and the
// schema version compatibility.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeEngineConfigError, "config validation failed", err)
	}

	if err := version.CheckSchemaCompatibility(version.SchemaVersion, c.SchemaVersion); err != nil {
		return errors.Wrap(errors.ErrCodeSchemaVersionError, "unsupported config schema", err)
	}

	if err := c.Indicator.Validate(); err != nil {
		return err
	}

	if err := c.Signal.Validate(); err != nil {
		return err
	}

	return nil
}

// GenerateSchemaJSON generates the JSON schema of the config surface.
func (c Config) GenerateSchemaJSON() (string, error) {
	return utils.GetSchemaFromConfig(c)
}
