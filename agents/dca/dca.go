package dca

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/agents/base"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/signal"
)

const (
	// Name is the agent name
	Name        = "dca"
	intervalKey = "interval"

	description = `Dollar cost averaging buys a fixed amount at a fixed cadence regardless of price`
)

// Agent buys on every n-th candle and holds the rest
type Agent struct {
	base.Agent
	interval decimal.Decimal
}

// Name returns the agent name
func (a *Agent) Name() string {
	return Name
}

// Description provides a nice overview of the agent
func (a *Agent) Description() string {
	return description
}

// Act emits a BUY on every interval-th candle with unit strength
func (a *Agent) Act(series *kline.Series) (signal.Stream, error) {
	interval := int(a.interval.IntPart())
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval %v must be positive", base.ErrInvalidCustomSettings, interval)
	}
	if err := a.CheckWarmup(series, 0); err != nil {
		return nil, err
	}

	var resp signal.Stream
	for i := 0; i < series.Len(); i++ {
		candle, err := series.Candle(i)
		if err != nil {
			return nil, err
		}
		d := signal.Decision{Time: candle.Time, Action: signal.Hold}
		if i%interval == 0 {
			d.Action = signal.Buy
			d.Strength = decimal.NewFromInt(1)
		}
		resp = append(resp, d)
	}
	return resp, nil
}

// SetCustomSettings allows a user to modify the buy cadence in their config
func (a *Agent) SetCustomSettings(settings map[string]any) error {
	for k, v := range settings {
		f, err := base.Float(k, v)
		if err != nil {
			return err
		}
		switch k {
		case intervalKey:
			if f <= 0 {
				return fmt.Errorf("%w: interval %v must be positive", base.ErrInvalidCustomSettings, f)
			}
			a.interval = decimal.NewFromFloat(f)
		default:
			return fmt.Errorf("%w: unrecognised key %v", base.ErrInvalidCustomSettings, k)
		}
	}
	return nil
}

// SetDefaults sets the custom settings to their default values
func (a *Agent) SetDefaults() {
	a.interval = decimal.NewFromInt(24)
}
