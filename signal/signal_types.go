package signal

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Action is a discrete trading decision produced by an agent
type Action string

const (
	// Buy signals intent to enter the market or open a long position
	Buy Action = "BUY"
	// Sell signals intent to exit the market or open a short position
	Sell Action = "SELL"
	// Hold signals no action for the interval
	Hold Action = "HOLD"
)

var (
	// ErrInvalidAction is returned for any action outside BUY/SELL/HOLD,
	// which indicates a contract violation by the decision producer
	ErrInvalidAction = errors.New("invalid action")
	// ErrUnorderedStream is returned when decision timestamps are duplicated
	// or not strictly increasing
	ErrUnorderedStream = errors.New("decision timestamps must be unique and strictly increasing")
	// ErrDecisionOutsideSeries is returned when a decision timestamp has no
	// matching candle in the price series
	ErrDecisionOutsideSeries = errors.New("decision timestamp not present in price series")
	// ErrEmptyStream is returned when at least one decision is required
	ErrEmptyStream = errors.New("decision stream contains no decisions")
)

// Decision pairs an action with the continuous indicator strength that
// produced it. Strength meaning is investor-policy specific: the margin
// policy reads it as leverage, the spot policy does not consult it
type Decision struct {
	Time     time.Time
	Action   Action
	Strength decimal.Decimal
}

// Stream is a chronologically ordered decision sequence whose timestamps
// are a subset of the price series it will be replayed against
type Stream []Decision
