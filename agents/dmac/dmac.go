package dmac

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
	Name    = "dmac"
	fastKey = "fast-period"
	slowKey = "slow-period"

	description = `The dual moving average crossover signals entries when a fast simple moving average crosses a slow one: golden cross to buy, death cross to sell`
)

// Agent signals on crossovers of two simple moving averages
type Agent struct {
	base.Agent
	fast decimal.Decimal
	slow decimal.Decimal
}

// Name returns the agent name
func (a *Agent) Name() string {
	return Name
}

// Description provides a nice overview of the agent
func (a *Agent) Description() string {
	return description
}

// Act emits one decision per candle once the slow average has warmed up.
// Strength is the separation of the averages relative to the slow average
func (a *Agent) Act(series *kline.Series) (signal.Stream, error) {
	fast := int(a.fast.IntPart())
	slow := int(a.slow.IntPart())
	if fast >= slow {
		return nil, fmt.Errorf("%w: fast period %v must be below slow period %v", base.ErrInvalidCustomSettings, fast, slow)
	}
	if err := a.CheckWarmup(series, slow); err != nil {
		return nil, err
	}

	closes := series.Closes()
	fastMA := indicators.SMA(closes, fast)
	slowMA := indicators.SMA(closes, slow)

	var resp signal.Stream
	for i := slow; i < series.Len(); i++ {
		candle, err := series.Candle(i)
		if err != nil {
			return nil, err
		}
		d := signal.Decision{Time: candle.Time, Action: signal.Hold}
		prev := fastMA[i-1] - slowMA[i-1]
		curr := fastMA[i] - slowMA[i]
		switch {
		case prev <= 0 && curr > 0:
			d.Action = signal.Buy
			d.Strength = a.Strength(curr / slowMA[i])
		case prev >= 0 && curr < 0:
			d.Action = signal.Sell
			d.Strength = a.Strength(curr / slowMA[i])
		}
		resp = append(resp, d)
	}
	return resp, nil
}

// SetCustomSettings allows a user to modify the averaging periods in their
// config
func (a *Agent) SetCustomSettings(settings map[string]any) error {
	for k, v := range settings {
		f, err := base.Float(k, v)
		if err != nil {
			return err
		}
		switch k {
		case fastKey:
			a.fast = decimal.NewFromFloat(f)
		case slowKey:
			a.slow = decimal.NewFromFloat(f)
		default:
			return fmt.Errorf("%w: unrecognised key %v", base.ErrInvalidCustomSettings, k)
		}
	}
	return nil
}

// SetDefaults sets the custom settings to their default values
func (a *Agent) SetDefaults() {
	a.fast = decimal.NewFromInt(10)
	a.slow = decimal.NewFromInt(30)
}
