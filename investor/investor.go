// Package investor defines the portfolio simulation contract and the state
// shared by its policies. Balances live on explicit owned fields, updated
// alongside ledger appends, never recovered by re-reading ledger history
package investor

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/common"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/log"
	"github.com/tidal-labs/coinsim/signal"
)

// Base carries the portfolio state every policy shares
type Base struct {
	InitialFunds   decimal.Decimal
	Fiat           decimal.Decimal
	InvestmentSize decimal.Decimal
	LastClose      decimal.Decimal

	rejections []Rejection
}

// NewBase validates the shared constructor arguments
func NewBase(initialFunds, investmentSize decimal.Decimal) (Base, error) {
	if initialFunds.IsNegative() {
		return Base{}, ErrInvalidInitialFunds
	}
	if investmentSize.LessThanOrEqual(decimal.Zero) {
		return Base{}, ErrInvalidInvestmentSize
	}
	return Base{
		InitialFunds:   initialFunds,
		Fiat:           initialFunds,
		InvestmentSize: investmentSize,
	}, nil
}

// Reject records a trade attempt absorbed without execution and raises a
// warning-level log event. Rejections never surface as errors
func (b *Base) Reject(t time.Time, a signal.Action, reason string) {
	b.rejections = append(b.rejections, Rejection{Time: t, Action: a, Reason: reason})
	log.Warnf(log.Investor, "%v %v rejected: %v", t.Format(common.SimpleTimeFormat), a, reason)
}

// Rejections returns a copy of the rejections recorded so far
func (b *Base) Rejections() []Rejection {
	resp := make([]Rejection, len(b.rejections))
	copy(resp, b.rejections)
	return resp
}

// ResetBase restores the shared state to its initial values
func (b *Base) ResetBase() {
	b.Fiat = b.InitialFunds
	b.LastClose = decimal.Zero
	b.rejections = nil
}

// ValidateInputs performs the shared fail-fast precondition checks before a
// simulation pass. Series ordering is guaranteed at construction by
// kline.NewSeries; the stream is checked for ordering, action validity and
// the subset rule here
func ValidateInputs(series *kline.Series, decisions signal.Stream) error {
	if series == nil {
		return common.ErrNilArguments
	}
	return decisions.Validate(series)
}
