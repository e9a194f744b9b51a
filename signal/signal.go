package signal

import (
	"fmt"

	"github.com/tidal-labs/coinsim/data/kline"
)

// Validate reports whether the action is one of BUY/SELL/HOLD
func (a Action) Validate() error {
	switch a {
	case Buy, Sell, Hold:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidAction, a)
}

// Validate checks stream ordering, action validity and, when a series is
// supplied, that every decision timestamp has a matching candle
func (s Stream) Validate(series *kline.Series) error {
	for i := range s {
		if err := s[i].Action.Validate(); err != nil {
			return fmt.Errorf("decision at %v: %w", s[i].Time, err)
		}
		if i > 0 && !s[i].Time.After(s[i-1].Time) {
			return fmt.Errorf("%w at index %v (%v)", ErrUnorderedStream, i, s[i].Time)
		}
	}
	if series == nil {
		return nil
	}

	// both sides are ordered so a single merge pass covers the subset rule
	j := 0
	for i := range s {
		matched := false
		for ; j < series.Len(); j++ {
			c, err := series.Candle(j)
			if err != nil {
				return err
			}
			if c.Time.Equal(s[i].Time) {
				matched = true
				j++
				break
			}
			if c.Time.After(s[i].Time) {
				break
			}
		}
		if !matched {
			return fmt.Errorf("%w: %v", ErrDecisionOutsideSeries, s[i].Time)
		}
	}
	return nil
}

// Latest returns the most recent decision in the stream
func (s Stream) Latest() (Decision, error) {
	if len(s) == 0 {
		return Decision{}, ErrEmptyStream
	}
	return s[len(s)-1], nil
}
