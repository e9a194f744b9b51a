package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidal-labs/coinsim/investor"
)

const testConfig = `{
	"nickname": "unit test run",
	"data": {"csv-file": "testdata/candles.csv"},
	"agent": {"name": "rsi", "custom-settings": {"rsi-period": 10}},
	"investor": {
		"policy": "spot",
		"initial-funds": 1000,
		"investment-size": 100,
		"env-parameters": {"trading_fee": 0.002}
	}
}`

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig([]byte(testConfig))
	require.NoError(t, err)
	assert.Equal(t, "unit test run", cfg.Nickname)
	assert.Equal(t, "rsi", cfg.Agent.Name)
	assert.Equal(t, 10.0, cfg.Agent.CustomSettings["rsi-period"])
	assert.Equal(t, SpotPolicy, cfg.Investor.Policy)
	assert.Equal(t, 1000.0, cfg.Investor.InitialFunds)

	_, err = LoadConfig([]byte("{"))
	assert.Error(t, err)
}

func TestReadConfigFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := ReadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "unit test run", cfg.Nickname)

	_, err = ReadConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	valid := func() *Config {
		cfg, err := LoadConfig([]byte(testConfig))
		require.NoError(t, err)
		return cfg
	}

	cfg := valid()
	cfg.Data.CSVFile = ""
	assert.ErrorIs(t, cfg.Validate(), errNoDataSource)

	cfg = valid()
	cfg.Agent.Name = ""
	assert.ErrorIs(t, cfg.Validate(), errNoAgent)

	cfg = valid()
	cfg.Investor.Policy = "futures"
	assert.ErrorIs(t, cfg.Validate(), errUnknownPolicy)

	cfg = valid()
	cfg.Investor.Policy = "MARGIN"
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Investor.InitialFunds = -1
	assert.ErrorIs(t, cfg.Validate(), errBadInitialFunds)

	cfg = valid()
	cfg.Investor.InvestmentSize = 0
	assert.ErrorIs(t, cfg.Validate(), errBadInvestmentSize)
}

func TestEnvParameters(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig([]byte(testConfig))
	require.NoError(t, err)

	params := cfg.EnvParameters()
	require.NotNil(t, params)
	assert.True(t, params[investor.TradingFeeKey].Equal(decimal.NewFromFloat(0.002)))

	cfg.Investor.EnvParameters = nil
	assert.Nil(t, cfg.EnvParameters())
}
