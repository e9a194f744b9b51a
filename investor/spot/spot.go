// Package spot implements the spot trading investor policy. Each executed
// BUY or SELL moves the same fixed fiat notional; the decision strength is
// not consulted for trade sizing
package spot

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/investor"
	"github.com/tidal-labs/coinsim/signal"
)

var one = decimal.NewFromInt(1)

// New returns a spot investor holding initialFunds of uncommitted fiat and
// trading investmentSize per executed decision
func New(initialFunds, investmentSize decimal.Decimal) (*Investor, error) {
	base, err := investor.NewBase(initialFunds, investmentSize)
	if err != nil {
		return nil, err
	}
	return &Investor{
		Base:       base,
		tradingFee: DefaultTradingFee,
	}, nil
}

// SetEnvParameters applies recognized keys; unrecognized keys are ignored
// and omitted keys keep their current value
func (i *Investor) SetEnvParameters(params investor.EnvParameters) {
	if fee, ok := params[investor.TradingFeeKey]; ok {
		i.tradingFee = fee
	}
}

// Invest replays the decision stream against the price series. Candles
// without a decision are skipped; each decision is executed against its
// candle's close. Returns the ledger entries produced during the call
func (i *Investor) Invest(series *kline.Series, decisions signal.Stream) ([]investor.LedgerEntry, error) {
	if err := investor.ValidateInputs(series, decisions); err != nil {
		return nil, err
	}

	var resp []investor.LedgerEntry
	j := 0
	for idx := 0; idx < series.Len() && j < len(decisions); idx++ {
		candle, err := series.Candle(idx)
		if err != nil {
			return nil, err
		}
		if !candle.Time.Equal(decisions[j].Time) {
			continue
		}
		i.LastClose = candle.Close
		entry, err := i.execute(candle, decisions[j])
		if err != nil {
			return nil, err
		}
		if entry != nil {
			resp = append(resp, *entry)
		}
		j++
	}
	return resp, nil
}

// MakeInvestment executes the last decision in the stream against the last
// candle in the series. Returns the produced ledger delta, empty when the
// trade was rejected or the action is HOLD, and the portfolio value after
// the trade, liquidation-valued when finalValue is set
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
	entry, err := i.execute(latest, decision)
	if err != nil {
		return nil, decimal.Zero, err
	}

	var resp []investor.LedgerEntry
	if entry != nil {
		resp = append(resp, *entry)
	}
	if finalValue {
		return resp, i.FinalPortfolioValue(), nil
	}
	return resp, i.PortfolioValue(), nil
}

func (i *Investor) execute(candle kline.Candle, decision signal.Decision) (*Entry, error) {
	switch decision.Action {
	case signal.Hold:
		return nil, nil
	case signal.Buy:
		return i.buy(candle), nil
	case signal.Sell:
		return i.sell(candle), nil
	}
	return nil, fmt.Errorf("%w: %q", signal.ErrInvalidAction, decision.Action)
}

func (i *Investor) buy(candle kline.Candle) *Entry {
	if i.Fiat.LessThan(i.InvestmentSize) {
		i.Reject(candle.Time, signal.Buy, investor.ReasonNotEnoughFunds)
		return nil
	}

	i.Fiat = i.Fiat.Sub(i.InvestmentSize)
	fee := i.InvestmentSize.Mul(i.tradingFee)
	coinsAcquired := i.InvestmentSize.Sub(fee).Div(candle.Close)
	i.accumulatedCoins = i.accumulatedCoins.Add(coinsAcquired)

	return i.ledger.append(Entry{
		Timestamp: candle.Time,
		FiatDelta: i.InvestmentSize.Neg(),
		CoinDelta: coinsAcquired,
	})
}

func (i *Investor) sell(candle kline.Candle) *Entry {
	coinsNeeded := i.InvestmentSize.Div(candle.Close)
	if coinsNeeded.GreaterThan(i.accumulatedCoins) {
		i.Reject(candle.Time, signal.Sell, investor.ReasonNotEnoughHoldings)
		return nil
	}

	i.accumulatedCoins = i.accumulatedCoins.Sub(coinsNeeded)
	fee := i.InvestmentSize.Mul(i.tradingFee)
	i.Fiat = i.Fiat.Add(i.InvestmentSize.Sub(fee))

	return i.ledger.append(Entry{
		Timestamp: candle.Time,
		FiatDelta: i.InvestmentSize,
		CoinDelta: coinsNeeded.Neg(),
	})
}

// PortfolioValue marks held coins to the most recent observed close
func (i *Investor) PortfolioValue() decimal.Decimal {
	return i.Fiat.Add(i.accumulatedCoins.Mul(i.LastClose))
}

// FinalPortfolioValue values the portfolio as if the coin position were
// liquidated at the most recent observed close, paying the fee once more
func (i *Investor) FinalPortfolioValue() decimal.Decimal {
	coinValue := i.accumulatedCoins.Mul(i.LastClose)
	return i.Fiat.Add(coinValue.Mul(one.Sub(i.tradingFee)))
}

// AccumulatedCoins returns the net held asset units
func (i *Investor) AccumulatedCoins() decimal.Decimal {
	return i.accumulatedCoins
}

// Ledger returns the executed trades recorded so far
func (i *Investor) Ledger() []Entry {
	return i.ledger.Entries()
}

// Reset returns balances and the ledger to their initial state. Environment
// parameters applied via SetEnvParameters are retained
func (i *Investor) Reset() {
	i.ResetBase()
	i.accumulatedCoins = decimal.Zero
	i.ledger = Ledger{}
}

func (l *Ledger) append(e Entry) *Entry {
	l.entries = append(l.entries, e)
	return &l.entries[len(l.entries)-1]
}

// Entries returns a copy of the recorded trades
func (l *Ledger) Entries() []Entry {
	resp := make([]Entry, len(l.entries))
	copy(resp, l.entries)
	return resp
}
