package rsi

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gct-ta/indicators"
	"github.com/tidal-labs/coinsim/agents/base"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/signal"
)

const (
	// Name is the agent name
	Name      = "rsi"
	periodKey = "rsi-period"
	lowKey    = "rsi-low"
	highKey   = "rsi-high"

	description = `The relative strength index charts the current and historical strength or weakness of a market based on the closing prices of a recent trading period`
)

// Agent signals BUY when the RSI drops to or below the low watermark and
// SELL when it reaches the high watermark
type Agent struct {
	base.Agent
	period decimal.Decimal
	low    decimal.Decimal
	high   decimal.Decimal
}

// Name returns the agent name
func (a *Agent) Name() string {
	return Name
}

// Description provides a nice overview of the agent
func (a *Agent) Description() string {
	return description
}

// Act emits one decision per candle once the RSI period has warmed up.
// Strength is the distance of the RSI from its 50 midpoint, normalized to
// a positive multiplier
func (a *Agent) Act(series *kline.Series) (signal.Stream, error) {
	period := int(a.period.IntPart())
	if err := a.CheckWarmup(series, period); err != nil {
		return nil, err
	}

	values := indicators.RSI(series.Closes(), period)
	var resp signal.Stream
	for i := period; i < series.Len(); i++ {
		candle, err := series.Candle(i)
		if err != nil {
			return nil, err
		}
		v := decimal.NewFromFloat(values[i])
		d := signal.Decision{Time: candle.Time, Action: signal.Hold}
		switch {
		case v.GreaterThanOrEqual(a.high):
			d.Action = signal.Sell
			d.Strength = a.Strength((values[i] - 50) / 50)
		case v.LessThanOrEqual(a.low):
			d.Action = signal.Buy
			d.Strength = a.Strength((values[i] - 50) / 50)
		}
		resp = append(resp, d)
	}
	return resp, nil
}

// SetCustomSettings allows a user to modify the RSI limits in their config
func (a *Agent) SetCustomSettings(settings map[string]any) error {
	for k, v := range settings {
		f, err := base.Float(k, v)
		if err != nil {
			return err
		}
		switch k {
		case highKey:
			a.high = decimal.NewFromFloat(f)
		case lowKey:
			a.low = decimal.NewFromFloat(f)
		case periodKey:
			a.period = decimal.NewFromFloat(f)
		default:
			return fmt.Errorf("%w: unrecognised key %v", base.ErrInvalidCustomSettings, k)
		}
	}
	return nil
}

// SetDefaults sets the custom settings to their default values
func (a *Agent) SetDefaults() {
	a.period = decimal.NewFromInt(14)
	a.low = decimal.NewFromInt(30)
	a.high = decimal.NewFromInt(70)
}
