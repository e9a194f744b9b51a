package spot

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/investor"
)

// DefaultTradingFee is the 0.1% fee applied to each executed trade
var DefaultTradingFee = decimal.NewFromFloat(0.001)

// Entry is one executed spot trade. A negative fiat delta with a positive
// coin delta is a buy, the reverse is a sell. Entries are immutable once
// appended
type Entry struct {
	Timestamp time.Time
	FiatDelta decimal.Decimal
	CoinDelta decimal.Decimal
}

// When implements investor.LedgerEntry
func (e Entry) When() time.Time {
	return e.Timestamp
}

// Ledger is the append-only record of executed spot trades. Rejected trades
// never produce an entry
type Ledger struct {
	entries []Entry
}

// Investor is the spot trading policy: a fixed fiat notional per trade,
// decision strength not consulted for sizing
type Investor struct {
	investor.Base
	accumulatedCoins decimal.Decimal
	tradingFee       decimal.Decimal
	ledger           Ledger
}
