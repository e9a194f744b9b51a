// Package base holds helpers and errors shared by every agent
package base

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/data/kline"
)

var (
	// ErrInvalidCustomSettings is used when bad custom settings are found
	// in the run config
	ErrInvalidCustomSettings = errors.New("invalid custom settings in config")
	// ErrTooFewCandles is returned when the series cannot cover the
	// agent's warmup period
	ErrTooFewCandles = errors.New("not enough candles for agent warmup")
)

// Agent is the base implementation shared by the concrete agents
type Agent struct{}

// Strength converts an indicator magnitude into a positive decision
// strength, usable as leverage by the margin investor
func (a *Agent) Strength(v float64) decimal.Decimal {
	return decimal.NewFromFloat(math.Abs(v))
}

// CheckWarmup verifies the series covers the warmup period of n candles
func (a *Agent) CheckWarmup(series *kline.Series, n int) error {
	if series == nil {
		return kline.ErrEmptySeries
	}
	if series.Len() <= n {
		return fmt.Errorf("%w: have %v, need more than %v", ErrTooFewCandles, series.Len(), n)
	}
	return nil
}

// Float reads a float64 custom setting, the type every JSON number decodes
// to
func Float(key string, v any) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %v value %v could not be parsed", ErrInvalidCustomSettings, key, v)
	}
	return f, nil
}
