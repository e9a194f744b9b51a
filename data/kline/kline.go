package kline

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// NewSeries validates the supplied candles and wraps them in a Series.
// Ordering violations are treated as caller contract breaches and fail fast
func NewSeries(candles []Candle) (*Series, error) {
	if len(candles) == 0 {
		return nil, ErrEmptySeries
	}
	for i := range candles {
		if candles[i].Time.IsZero() {
			return nil, fmt.Errorf("%w at index %v", ErrMissingTimestamp, i)
		}
		if i > 0 && !candles[i].Time.After(candles[i-1].Time) {
			return nil, fmt.Errorf("%w at index %v (%v)", ErrUnorderedSeries, i, candles[i].Time)
		}
		if candles[i].Close.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w at index %v (%v)", ErrInvalidPrice, i, candles[i].Close)
		}
	}
	return &Series{candles: candles}, nil
}

// Len returns the number of candles held
func (s *Series) Len() int {
	return len(s.candles)
}

// Candle returns the candle at index i
func (s *Series) Candle(i int) (Candle, error) {
	if i < 0 || i >= len(s.candles) {
		return Candle{}, fmt.Errorf("%w index %v of %v", ErrOutOfRange, i, len(s.candles))
	}
	return s.candles[i], nil
}

// Latest returns the most recent candle in the series
func (s *Series) Latest() (Candle, error) {
	if len(s.candles) == 0 {
		return Candle{}, ErrEmptySeries
	}
	return s.candles[len(s.candles)-1], nil
}

// Truncate returns a point-in-time view containing the first n candles,
// sharing the underlying storage
func (s *Series) Truncate(n int) (*Series, error) {
	if n <= 0 || n > len(s.candles) {
		return nil, fmt.Errorf("%w truncating to %v of %v", ErrOutOfRange, n, len(s.candles))
	}
	return &Series{candles: s.candles[:n]}, nil
}

// HasDataAtTime reports whether a candle exists at the exact timestamp
func (s *Series) HasDataAtTime(t time.Time) bool {
	for i := range s.candles {
		if s.candles[i].Time.Equal(t) {
			return true
		}
		if s.candles[i].Time.After(t) {
			return false
		}
	}
	return false
}

// Closes returns the closing prices as floats for consumption by
// indicator libraries
func (s *Series) Closes() []float64 {
	resp := make([]float64, len(s.candles))
	for i := range s.candles {
		resp[i] = s.candles[i].Close.InexactFloat64()
	}
	return resp
}
