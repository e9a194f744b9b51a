package engine

import (
	"errors"

	"github.com/gofrs/uuid"
	"github.com/tidal-labs/coinsim/agents"
	"github.com/tidal-labs/coinsim/config"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/investor"
	"github.com/tidal-labs/coinsim/signal"
	"github.com/tidal-labs/coinsim/statistics"
)

var (
	errNilConfig = errors.New("nil config received")
	errNotSetup  = errors.New("simulation has not been set up")
)

// BackTest is a single simulation run: one series, one agent, one investor
type BackTest struct {
	RunID     uuid.UUID
	cfg       *config.Config
	series    *kline.Series
	agent     agents.Handler
	investor  investor.Handler
	decisions signal.Stream
	entries   []investor.LedgerEntry
	statistic *statistics.Statistic
}
