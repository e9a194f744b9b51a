// Package statistics summarises a completed simulation run
package statistics

import (
	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/common"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/investor"
	"github.com/tidal-labs/coinsim/investor/margin"
	"github.com/tidal-labs/coinsim/log"
	"github.com/tidal-labs/coinsim/signal"
)

// Summarise builds the run summary from the replayed series, the decision
// stream and the investor that consumed them
func Summarise(nickname, agentName, policy string, series *kline.Series, decisions signal.Stream, handler investor.Handler, entries []investor.LedgerEntry, initialFunds decimal.Decimal) (*Statistic, error) {
	if series == nil {
		return nil, kline.ErrEmptySeries
	}
	if handler == nil {
		return nil, errNilInvestor
	}

	first, err := series.Candle(0)
	if err != nil {
		return nil, err
	}
	last, err := series.Latest()
	if err != nil {
		return nil, err
	}

	stat := &Statistic{
		Nickname:       nickname,
		AgentName:      agentName,
		Policy:         policy,
		StartDate:      first.Time,
		EndDate:        last.Time,
		CandleCount:    series.Len(),
		DecisionCount:  len(decisions),
		InitialFunds:   initialFunds,
		MarkToMarket:   handler.PortfolioValue(),
		FinalValue:     handler.FinalPortfolioValue(),
		ExecutedTrades: len(entries),
		Rejections:     handler.Rejections(),
	}
	if !initialFunds.IsZero() {
		stat.NetReturn = stat.FinalValue.Sub(initialFunds).Div(initialFunds).Mul(decimal.NewFromInt(100))
	}
	if m, ok := handler.(*margin.Investor); ok {
		stat.ActivePositions = len(m.ActivePositions())
	}
	return stat, nil
}

// PrintResult logs the summary in a human readable form
func (s *Statistic) PrintResult() {
	if s == nil {
		return
	}
	log.Infof(log.Statistics, "run %v | agent %v | policy %v", s.Nickname, s.AgentName, s.Policy)
	log.Infof(log.Statistics, "period %v to %v over %v candles, %v decisions",
		s.StartDate.Format(common.SimpleTimeFormat),
		s.EndDate.Format(common.SimpleTimeFormat),
		s.CandleCount,
		s.DecisionCount)
	log.Infof(log.Statistics, "initial funds %v", s.InitialFunds.Round(8))
	log.Infof(log.Statistics, "mark to market %v", s.MarkToMarket.Round(8))
	log.Infof(log.Statistics, "final value %v", s.FinalValue.Round(8))
	log.Infof(log.Statistics, "net return %v%%", s.NetReturn.Round(4))
	log.Infof(log.Statistics, "executed trades %v, rejected %v", s.ExecutedTrades, len(s.Rejections))
	for i := range s.Rejections {
		log.Debugf(log.Statistics, "rejected %v at %v: %v",
			s.Rejections[i].Action,
			s.Rejections[i].Time.Format(common.SimpleTimeFormat),
			s.Rejections[i].Reason)
	}
	if s.ActivePositions > 0 {
		log.Infof(log.Statistics, "positions still open %v", s.ActivePositions)
	}
}
