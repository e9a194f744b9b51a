package statistics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/investor"
)

var (
	// ErrNoResults is returned when a summary is requested before any run
	// has completed
	ErrNoResults   = errors.New("no run results to summarise")
	errNilInvestor = errors.New("nil investor handler")
)

// Statistic holds the summary of a single simulation run
type Statistic struct {
	Nickname        string               `json:"nickname"`
	AgentName       string               `json:"agent-name"`
	Policy          string               `json:"policy"`
	StartDate       time.Time            `json:"start-date"`
	EndDate         time.Time            `json:"end-date"`
	CandleCount     int                  `json:"candle-count"`
	DecisionCount   int                  `json:"decision-count"`
	InitialFunds    decimal.Decimal      `json:"initial-funds"`
	MarkToMarket    decimal.Decimal      `json:"mark-to-market"`
	FinalValue      decimal.Decimal      `json:"final-value"`
	NetReturn       decimal.Decimal      `json:"net-return"`
	ExecutedTrades  int                  `json:"executed-trades"`
	Rejections      []investor.Rejection `json:"rejections"`
	ActivePositions int                  `json:"active-positions"`
}
