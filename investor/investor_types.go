package investor

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/signal"
)

// Recognized environment parameter keys for SetEnvParameters. Unrecognized
// keys are ignored, omitted keys keep their current value
const (
	// TradingFeeKey sets the per-trade fee rate on the spot policy
	TradingFeeKey = "trading_fee"
	// AssetInterestRateKey sets the per-interval borrow rate for short
	// positions on the margin policy
	AssetInterestRateKey = "asset_interest_rate"
	// FiatInterestRateKey sets the per-interval borrow rate for long
	// positions on the margin policy
	FiatInterestRateKey = "fiat_interest_rate"
	// TakeProfitPercentageKey sets the take-profit multiple of the entry
	// price on the margin policy
	TakeProfitPercentageKey = "take_profit_percentage"
	// StopLossPercentageKey sets the stop-loss multiple of the entry price
	// on the margin policy
	StopLossPercentageKey = "stop_loss_percentage"
)

// Rejection reasons
const (
	ReasonNotEnoughFunds    = "not enough funds to buy"
	ReasonNotEnoughHoldings = "not enough holdings to sell"
	ReasonNotionalTooLarge  = "insufficient available funds to cover notional"
)

var (
	// ErrInvalidInitialFunds is returned when an investor is created with
	// negative starting capital
	ErrInvalidInitialFunds = errors.New("initial funds cannot be negative")
	// ErrInvalidInvestmentSize is returned when the fixed per-trade size is
	// not positive
	ErrInvalidInvestmentSize = errors.New("investment size must be positive")
)

// EnvParameters is the loosely-typed configuration surface shared by all
// policies, allowing scenario sweeps without rebuilding the investor
type EnvParameters map[string]decimal.Decimal

// LedgerEntry is the minimal cross-policy view of one executed-trade record
type LedgerEntry interface {
	When() time.Time
}

// Rejection records a trade attempt that was absorbed without execution.
// Capital insufficiency never surfaces as an error
type Rejection struct {
	Time   time.Time
	Action signal.Action
	Reason string
}

// Handler is the portfolio simulation contract shared by all investor
// policies. Implementations are single-run, single-goroutine engines; an
// instance must not be shared across concurrent simulations
type Handler interface {
	// Invest replays the decision stream against the price series in
	// chronological order and returns the ledger entries produced
	Invest(series *kline.Series, decisions signal.Stream) ([]LedgerEntry, error)
	// MakeInvestment executes at most the last decision in the stream
	// against the last candle in the series, returning the produced ledger
	// delta and the mark-to-market value, or the liquidation value when
	// finalValue is set
	MakeInvestment(series *kline.Series, decisions signal.Stream, finalValue bool) ([]LedgerEntry, decimal.Decimal, error)
	// PortfolioValue values the portfolio at the most recent observed close
	// without liquidating open positions. Pure query
	PortfolioValue() decimal.Decimal
	// FinalPortfolioValue values the portfolio assuming all open positions
	// are closed at the most recent observed close, net of costs. Pure query
	FinalPortfolioValue() decimal.Decimal
	// SetEnvParameters applies recognized configuration keys
	SetEnvParameters(params EnvParameters)
	// Rejections returns the trades absorbed as no-ops so far
	Rejections() []Rejection
	// Reset returns balances and ledgers to their initial state
	Reset()
}
