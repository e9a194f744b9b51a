package margin

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/investor"
)

// Side is the direction of a leveraged position
type Side string

const (
	// Long positions profit when the price rises above entry
	Long Side = "LONG"
	// Short positions profit when the price falls below entry
	Short Side = "SHORT"
)

// Default per-interval borrow rates and risk thresholds
var (
	DefaultAssetInterestRate = decimal.NewFromFloat(0.00002) // 0.002%
	DefaultFiatInterestRate  = decimal.NewFromFloat(0.0003)  // 0.03%
	DefaultTakeProfit        = decimal.NewFromFloat(1.05)
	DefaultStopLoss          = decimal.NewFromFloat(0.97)
)

// ErrInvalidLeverage is returned when a decision carries a non-positive
// strength in the margin path. A contract violation by the decision
// producer, failed fast rather than silently clamped
var ErrInvalidLeverage = errors.New("leverage must be positive")

// Position is one row of the margin ledger: a leveraged LONG or SHORT
// opened by an executed decision. FiatCommitted is the fixed collateral;
// leverage scales the borrowed notional, not the collateral. Rows are kept
// for audit and only ever mutated to clear Active
type Position struct {
	ID            uuid.UUID
	OpenedAt      time.Time
	Side          Side
	FiatCommitted decimal.Decimal
	EntryPrice    decimal.Decimal
	Leverage      decimal.Decimal
	Active        bool
}

// When implements investor.LedgerEntry
func (p *Position) When() time.Time {
	return p.OpenedAt
}

// Notional is the borrowed exposure of the position
func (p *Position) Notional() decimal.Decimal {
	return p.FiatCommitted.Mul(p.Leverage)
}

// Positions is the append-only margin ledger
type Positions struct {
	positions []*Position
}

// Investor is the margin trading policy: fixed collateral per position,
// decision strength used directly as leverage, interest accrual and TP/SL
// checks on every price update
type Investor struct {
	investor.Base
	positions Positions

	assetInterestRate decimal.Decimal
	fiatInterestRate  decimal.Decimal
	takeProfit        decimal.Decimal
	stopLoss          decimal.Decimal

	// canTrade is sticky: once false the account is wiped out and every
	// valuation returns zero for the remainder of the simulation
	canTrade bool
}
