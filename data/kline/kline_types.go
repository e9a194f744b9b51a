package kline

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptySeries is returned when a series holds no candles
	ErrEmptySeries = errors.New("candle series contains no candles")
	// ErrMissingTimestamp is returned when a candle carries a zero timestamp
	ErrMissingTimestamp = errors.New("candle missing timestamp")
	// ErrUnorderedSeries is returned when candle timestamps are duplicated or
	// not strictly increasing
	ErrUnorderedSeries = errors.New("candle timestamps must be unique and strictly increasing")
	// ErrOutOfRange is returned when requesting a candle beyond the series
	ErrOutOfRange = errors.New("candle index out of range")
	// ErrInvalidPrice is returned when a candle close is not positive;
	// closes divide valuations and entry-price ratios downstream
	ErrInvalidPrice = errors.New("candle close must be positive")
)

// Candle holds a single OHLCV bar
type Candle struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// Series is a chronologically ordered candle stream. Once built via
// NewSeries it is treated as immutable by every consumer
type Series struct {
	candles []Candle
}
