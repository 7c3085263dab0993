package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefaultConfig() {
	config := DefaultConfig()

	suite.Equal(version.SchemaVersion, config.SchemaVersion)
	suite.Equal(20, config.Indicator.EMAFastPeriod)
	suite.Equal(50, config.Indicator.EMASlowPeriod)
	suite.Equal(30.0, config.Signal.RSIOversold)
	suite.Equal(70.0, config.Signal.RSIOverbought)
	suite.Equal(200, config.Signal.WarmupBars)
	suite.Equal(-0.05, config.Risk.Stoploss)
	suite.NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestParseConfigEmpty() {
	config, err := ParseConfig("")
	suite.Require().NoError(err)
	suite.Equal(DefaultConfig(), config)
}

func (suite *ConfigTestSuite) TestParseConfigPartialOverride() {
	raw := `
indicator:
  rsi_period: 21
signal:
  rsi_oversold: 25
`

	config, err := ParseConfig(raw)
	suite.Require().NoError(err)

	suite.Equal(21, config.Indicator.RSIPeriod)
	suite.Equal(25.0, config.Signal.RSIOversold)
	// untouched sections keep their defaults
	suite.Equal(26, config.Indicator.MACDSlowPeriod)
	suite.Equal(70.0, config.Signal.RSIOverbought)
}

func (suite *ConfigTestSuite) TestParseConfigMalformedYAML() {
	_, err := ParseConfig("indicator: [")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeEngineConfigError))
}

func (suite *ConfigTestSuite) TestParseConfigUnsupportedSchemaVersion() {
	_, err := ParseConfig("schema_version: 2.0.0")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSchemaVersionError))
}

func (suite *ConfigTestSuite) TestParseConfigInvalidThreshold() {
	raw := `
signal:
  rsi_oversold: 80
  rsi_overbought: 20
`

	_, err := ParseConfig(raw)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidThreshold))
}

func (suite *ConfigTestSuite) TestParseConfigNegativePeriod() {
	// struct tags reject non-positive periods before the section validators run
	raw := `
indicator:
  ema_fast_period: -1
`

	_, err := ParseConfig(raw)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeEngineConfigError))
}

func (suite *ConfigTestSuite) TestGenerateSchemaJSON() {
	schema, err := EmptyConfig().GenerateSchemaJSON()
	suite.Require().NoError(err)

	suite.Contains(schema, "schema_version")
	suite.Contains(schema, "rsi_oversold")
	suite.Contains(schema, "ema_fast_period")
	suite.Contains(schema, "stoploss")
}
