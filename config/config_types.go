package config

import (
	"errors"
)

// Investor policies selectable in a run config
const (
	SpotPolicy   = "spot"
	MarginPolicy = "margin"
)

var (
	// ErrFileNotFound is returned when the config path does not resolve
	ErrFileNotFound      = errors.New("config file not found")
	errNoDataSource      = errors.New("no candle data source set")
	errNoAgent           = errors.New("no agent set")
	errUnknownPolicy     = errors.New("unknown investor policy")
	errBadInitialFunds   = errors.New("initial funds cannot be negative")
	errBadInvestmentSize = errors.New("investment size must be positive")
)

// Config defines what is in an individual run config
type Config struct {
	Nickname string           `json:"nickname"`
	Data     DataSettings     `json:"data"`
	Agent    AgentSettings    `json:"agent"`
	Investor InvestorSettings `json:"investor"`
}

// DataSettings points at the candle data backing the run
type DataSettings struct {
	CSVFile string `json:"csv-file"`
}

// AgentSettings names the agent to load and its overrides
type AgentSettings struct {
	Name           string         `json:"name"`
	CustomSettings map[string]any `json:"custom-settings,omitempty"`
}

// InvestorSettings selects and parameterises the investor policy
type InvestorSettings struct {
	Policy         string             `json:"policy"`
	InitialFunds   float64            `json:"initial-funds"`
	InvestmentSize float64            `json:"investment-size"`
	EnvParameters  map[string]float64 `json:"env-parameters,omitempty"`
}
