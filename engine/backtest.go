// Package engine wires a run config into a replayable simulation
package engine

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/agents"
	"github.com/tidal-labs/coinsim/config"
	"github.com/tidal-labs/coinsim/data/kline/csv"
	"github.com/tidal-labs/coinsim/investor/margin"
	"github.com/tidal-labs/coinsim/investor/spot"
	"github.com/tidal-labs/coinsim/log"
	"github.com/tidal-labs/coinsim/statistics"
)

// NewFromConfig assembles a simulation from a validated run config
func NewFromConfig(cfg *config.Config) (*BackTest, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	bt := &BackTest{RunID: id, cfg: cfg}

	bt.series, err = csv.LoadSeries(cfg.Data.CSVFile)
	if err != nil {
		return nil, fmt.Errorf("could not load candle data: %w", err)
	}

	bt.agent, err = agents.LoadAgentByName(cfg.Agent.Name)
	if err != nil {
		return nil, err
	}
	if len(cfg.Agent.CustomSettings) > 0 {
		if err = bt.agent.SetCustomSettings(cfg.Agent.CustomSettings); err != nil {
			return nil, err
		}
	}

	initialFunds := decimal.NewFromFloat(cfg.Investor.InitialFunds)
	investmentSize := decimal.NewFromFloat(cfg.Investor.InvestmentSize)
	switch strings.ToLower(cfg.Investor.Policy) {
	case config.SpotPolicy:
		bt.investor, err = spot.New(initialFunds, investmentSize)
	case config.MarginPolicy:
		bt.investor, err = margin.New(initialFunds, investmentSize)
	}
	if err != nil {
		return nil, err
	}
	if params := cfg.EnvParameters(); params != nil {
		bt.investor.SetEnvParameters(params)
	}

	log.Debugf(log.Engine, "run %v set up: %v candles, agent %v, policy %v",
		bt.RunID, bt.series.Len(), bt.agent.Name(), cfg.Investor.Policy)
	return bt, nil
}

// Run generates the decision stream, replays it through the investor and
// returns the run summary
func (bt *BackTest) Run() (*statistics.Statistic, error) {
	if bt == nil || bt.series == nil || bt.agent == nil || bt.investor == nil {
		return nil, errNotSetup
	}

	var err error
	bt.decisions, err = bt.agent.Act(bt.series)
	if err != nil {
		return nil, fmt.Errorf("agent %v could not act: %w", bt.agent.Name(), err)
	}
	log.Infof(log.Engine, "run %v: agent %v produced %v decisions",
		bt.RunID, bt.agent.Name(), len(bt.decisions))

	bt.entries, err = bt.investor.Invest(bt.series, bt.decisions)
	if err != nil {
		return nil, err
	}

	bt.statistic, err = statistics.Summarise(
		bt.cfg.Nickname,
		bt.agent.Name(),
		strings.ToLower(bt.cfg.Investor.Policy),
		bt.series,
		bt.decisions,
		bt.investor,
		bt.entries,
		decimal.NewFromFloat(bt.cfg.Investor.InitialFunds))
	if err != nil {
		return nil, err
	}
	return bt.statistic, nil
}

// Statistic returns the summary of the last completed run
func (bt *BackTest) Statistic() (*statistics.Statistic, error) {
	if bt.statistic == nil {
		return nil, statistics.ErrNoResults
	}
	return bt.statistic, nil
}

// Reset returns the investor to its initial state so the run can be
// replayed, keeping the loaded series and agent
func (bt *BackTest) Reset() {
	if bt == nil {
		return
	}
	bt.decisions = nil
	bt.entries = nil
	bt.statistic = nil
	if bt.investor != nil {
		bt.investor.Reset()
	}
}
