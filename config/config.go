// Package config loads and validates run configs
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/investor"
)

// ReadConfigFromFile will take a config from a path
func ReadConfigFromFile(path string) (*Config, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", ErrFileNotFound, path)
		}
		return nil, err
	}
	return LoadConfig(fileData)
}

// LoadConfig unmarshalls byte data into a config struct
func LoadConfig(data []byte) (*Config, error) {
	var resp *Config
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return resp, resp.Validate()
}

// Validate checks all config settings
func (c *Config) Validate() error {
	if c.Data.CSVFile == "" {
		return errNoDataSource
	}
	if c.Agent.Name == "" {
		return errNoAgent
	}
	switch strings.ToLower(c.Investor.Policy) {
	case SpotPolicy, MarginPolicy:
	default:
		return fmt.Errorf("%w: %v", errUnknownPolicy, c.Investor.Policy)
	}
	if c.Investor.InitialFunds < 0 {
		return errBadInitialFunds
	}
	if c.Investor.InvestmentSize <= 0 {
		return errBadInvestmentSize
	}
	return nil
}

// EnvParameters converts the config's float overrides into the investor's
// decimal parameter map
func (c *Config) EnvParameters() investor.EnvParameters {
	if len(c.Investor.EnvParameters) == 0 {
		return nil
	}
	params := make(investor.EnvParameters, len(c.Investor.EnvParameters))
	for k, v := range c.Investor.EnvParameters {
		params[k] = decimal.NewFromFloat(v)
	}
	return params
}
