// Package margin implements the leveraged investor policy. Opening a
// position debits the full borrowed notional from available capital,
// interest accrues on every price update and positions are force-closed by
// take-profit or stop-loss thresholds, take-profit checked first
package margin

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/common"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/investor"
	"github.com/tidal-labs/coinsim/log"
	"github.com/tidal-labs/coinsim/signal"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// New returns a margin investor with initialFunds of available capital,
// committing investmentSize of collateral per opened position
func New(initialFunds, investmentSize decimal.Decimal) (*Investor, error) {
	base, err := investor.NewBase(initialFunds, investmentSize)
	if err != nil {
		return nil, err
	}
	return &Investor{
		Base:              base,
		assetInterestRate: DefaultAssetInterestRate,
		fiatInterestRate:  DefaultFiatInterestRate,
		takeProfit:        DefaultTakeProfit,
		stopLoss:          DefaultStopLoss,
		canTrade:          true,
	}, nil
}

// SetEnvParameters applies recognized keys; unrecognized keys are ignored
// and omitted keys keep their current value
func (i *Investor) SetEnvParameters(params investor.EnvParameters) {
	if v, ok := params[investor.AssetInterestRateKey]; ok {
		i.assetInterestRate = v
	}
	if v, ok := params[investor.FiatInterestRateKey]; ok {
		i.fiatInterestRate = v
	}
	if v, ok := params[investor.TakeProfitPercentageKey]; ok {
		i.takeProfit = v
	}
	if v, ok := params[investor.StopLossPercentageKey]; ok {
		i.stopLoss = v
	}
}

// Invest replays the decision stream against the price series. Interest
// accrual and TP/SL checks run at every candle regardless of decisions.
// Returns the positions opened during the call
func (i *Investor) Invest(series *kline.Series, decisions signal.Stream) ([]investor.LedgerEntry, error) {
	if err := investor.ValidateInputs(series, decisions); err != nil {
		return nil, err
	}

	var resp []investor.LedgerEntry
	j := 0
	for idx := 0; idx < series.Len(); idx++ {
		candle, err := series.Candle(idx)
		if err != nil {
			return nil, err
		}
		i.LastClose = candle.Close
		i.updatePortfolio(candle.Close)

		if j >= len(decisions) || !candle.Time.Equal(decisions[j].Time) {
			continue
		}
		p, err := i.execute(candle, decisions[j])
		if err != nil {
			return nil, err
		}
		if p != nil {
			resp = append(resp, p)
		}
		j++
	}
	return resp, nil
}

// MakeInvestment runs the interest/TP/SL pass for the last candle in the
// series, then executes the last decision in the stream against it.
// Returns the opened position, empty when rejected or HOLD, and the
// portfolio value after the update
func (i *Investor) MakeInvestment(series *kline.Series, decisions signal.Stream, finalValue bool) ([]investor.LedgerEntry, decimal.Decimal, error) {
	if err := investor.ValidateInputs(series, nil); err != nil {
		return nil, decimal.Zero, err
	}
	latest, err := series.Latest()
	if err != nil {
		return nil, decimal.Zero, err
	}
	decision, err := decisions.Latest()
	if err != nil {
		return nil, decimal.Zero, err
	}

	i.LastClose = latest.Close
	i.updatePortfolio(latest.Close)

	p, err := i.execute(latest, decision)
	if err != nil {
		return nil, decimal.Zero, err
	}

	var resp []investor.LedgerEntry
	if p != nil {
		resp = append(resp, p)
	}
	if finalValue {
		return resp, i.FinalPortfolioValue(), nil
	}
	return resp, i.PortfolioValue(), nil
}

func (i *Investor) execute(candle kline.Candle, decision signal.Decision) (*Position, error) {
	switch decision.Action {
	case signal.Hold:
		return nil, nil
	case signal.Buy:
		return i.openPosition(candle, decision, Long)
	case signal.Sell:
		return i.openPosition(candle, decision, Short)
	}
	return nil, fmt.Errorf("%w: %q", signal.ErrInvalidAction, decision.Action)
}

func (i *Investor) openPosition(candle kline.Candle, decision signal.Decision, side Side) (*Position, error) {
	leverage := decision.Strength
	if leverage.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %v at %v", ErrInvalidLeverage, leverage, candle.Time)
	}

	// the full borrowed notional must be affordable from available capital
	// even though only the collateral is committed
	notional := i.InvestmentSize.Mul(leverage)
	if i.Fiat.LessThan(notional) {
		i.Reject(candle.Time, decision.Action, investor.ReasonNotionalTooLarge)
		return nil, nil
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	i.Fiat = i.Fiat.Sub(notional)
	p := &Position{
		ID:            id,
		OpenedAt:      candle.Time,
		Side:          side,
		FiatCommitted: i.InvestmentSize,
		EntryPrice:    candle.Close,
		Leverage:      leverage,
		Active:        true,
	}
	i.positions.append(p)
	log.Debugf(log.Investor, "%v opened %v %v @ %v leverage %v",
		candle.Time.Format(common.SimpleTimeFormat), side, i.InvestmentSize, candle.Close, leverage)
	return p, nil
}

// updatePortfolio is the mandatory every-timestamp pass: accrue interest on
// each active position, then force-close any position whose TP or SL
// threshold the close has crossed. TP is checked before SL; when one candle
// satisfies both, TP wins. After all positions are processed, non-positive
// available capital permanently halts trading
func (i *Investor) updatePortfolio(closePrice decimal.Decimal) {
	for _, p := range i.positions.positions {
		if !p.Active {
			continue
		}

		rate := i.fiatInterestRate
		if p.Side == Short {
			rate = i.assetInterestRate
		}
		i.Fiat = i.Fiat.Sub(p.Notional().Mul(rate))

		var tpPrice, slPrice decimal.Decimal
		var tpCrossed, slCrossed bool
		if p.Side == Long {
			tpPrice = p.EntryPrice.Mul(i.takeProfit)
			slPrice = p.EntryPrice.Mul(i.stopLoss)
			tpCrossed = closePrice.GreaterThanOrEqual(tpPrice)
			slCrossed = closePrice.LessThanOrEqual(slPrice)
		} else {
			// short thresholds are the long percentages reflected around
			// the entry price
			tpPrice = p.EntryPrice.Mul(two.Sub(i.takeProfit))
			slPrice = p.EntryPrice.Mul(two.Sub(i.stopLoss))
			tpCrossed = closePrice.LessThanOrEqual(tpPrice)
			slCrossed = closePrice.GreaterThanOrEqual(slPrice)
		}

		switch {
		case tpCrossed:
			i.closePosition(p, i.takeProfit, "take profit", tpPrice)
		case slCrossed:
			i.closePosition(p, i.stopLoss, "stop loss", slPrice)
		}
	}

	if i.Fiat.LessThanOrEqual(decimal.Zero) {
		if i.canTrade {
			log.Warnf(log.Investor, "available capital %v exhausted, margin call, trading halted", i.Fiat)
		}
		i.canTrade = false
	}
}

// closePosition realises P&L at the threshold percentage, returns the
// borrowed notional to available capital and deactivates the position
func (i *Investor) closePosition(p *Position, pct decimal.Decimal, trigger string, price decimal.Decimal) {
	notional := p.Notional()
	i.Fiat = i.Fiat.Add(notional.Mul(pct.Sub(one)))
	i.Fiat = i.Fiat.Add(notional)
	p.Active = false
	log.Debugf(log.Investor, "%v %v closed by %v @ %v", p.OpenedAt.Format(common.SimpleTimeFormat), p.Side, trigger, price)
}

// PortfolioValue returns zero once trading has halted; otherwise available
// capital plus, for every active position, the borrowed notional and the
// unrealised P&L at the most recent observed close. Equal to
// FinalPortfolioValue for this policy
func (i *Investor) PortfolioValue() decimal.Decimal {
	return i.FinalPortfolioValue()
}

// FinalPortfolioValue values the portfolio assuming every active position
// is closed at the most recent observed close
func (i *Investor) FinalPortfolioValue() decimal.Decimal {
	if !i.canTrade {
		return decimal.Zero
	}

	value := i.Fiat
	for _, p := range i.positions.positions {
		if !p.Active {
			continue
		}
		notional := p.Notional()
		value = value.Add(notional)
		ratio := i.LastClose.Div(p.EntryPrice)
		if p.Side == Long {
			value = value.Add(notional.Mul(ratio.Sub(one)))
		} else {
			value = value.Add(notional.Mul(one.Sub(ratio)))
		}
	}
	return value
}

// CanTrade reports whether the account is still live. Once false it never
// recovers
func (i *Investor) CanTrade() bool {
	return i.canTrade
}

// Positions returns the full margin ledger, open and closed
func (i *Investor) Positions() []*Position {
	return i.positions.All()
}

// ActivePositions returns the currently open positions
func (i *Investor) ActivePositions() []*Position {
	return i.positions.Active()
}

// Reset returns balances, the ledger and the trading halt to their initial
// state. Environment parameters applied via SetEnvParameters are retained
func (i *Investor) Reset() {
	i.ResetBase()
	i.positions = Positions{}
	i.canTrade = true
}

func (ps *Positions) append(p *Position) {
	ps.positions = append(ps.positions, p)
}

// All returns every recorded position in open order
func (ps *Positions) All() []*Position {
	resp := make([]*Position, len(ps.positions))
	copy(resp, ps.positions)
	return resp
}

// Active returns the positions that have not been force-closed
func (ps *Positions) Active() []*Position {
	var resp []*Position
	for _, p := range ps.positions {
		if p.Active {
			resp = append(resp, p)
		}
	}
	return resp
}
