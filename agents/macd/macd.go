package macd

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
	Name            = "macd"
	fastKey         = "fast-period"
	slowKey         = "slow-period"
	signalPeriodKey = "signal-period"

	description = `The moving average convergence divergence signals entries when its histogram crosses the zero line: above to buy, below to sell`
)

// Agent signals on zero-line crossings of the MACD histogram
type Agent struct {
	base.Agent
	fast         decimal.Decimal
	slow         decimal.Decimal
	signalPeriod decimal.Decimal
}

// Name returns the agent name
func (a *Agent) Name() string {
	return Name
}

// Description provides a nice overview of the agent
func (a *Agent) Description() string {
	return description
}

// Act emits one decision per candle once the slow and signal periods have
// warmed up. Strength is the histogram magnitude relative to the close
func (a *Agent) Act(series *kline.Series) (signal.Stream, error) {
	fast := int(a.fast.IntPart())
	slow := int(a.slow.IntPart())
	sigPeriod := int(a.signalPeriod.IntPart())
	if fast >= slow {
		return nil, fmt.Errorf("%w: fast period %v must be below slow period %v", base.ErrInvalidCustomSettings, fast, slow)
	}
	warmup := slow + sigPeriod
	if err := a.CheckWarmup(series, warmup); err != nil {
		return nil, err
	}

	_, _, hist := indicators.MACD(series.Closes(), fast, slow, sigPeriod)

	var resp signal.Stream
	for i := warmup; i < series.Len(); i++ {
		candle, err := series.Candle(i)
		if err != nil {
			return nil, err
		}
		d := signal.Decision{Time: candle.Time, Action: signal.Hold}
		switch {
		case hist[i-1] <= 0 && hist[i] > 0:
			d.Action = signal.Buy
			d.Strength = a.Strength(hist[i] / candle.Close.InexactFloat64())
		case hist[i-1] >= 0 && hist[i] < 0:
			d.Action = signal.Sell
			d.Strength = a.Strength(hist[i] / candle.Close.InexactFloat64())
		}
		resp = append(resp, d)
	}
	return resp, nil
}

// SetCustomSettings allows a user to modify the MACD periods in their
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
		case signalPeriodKey:
			a.signalPeriod = decimal.NewFromFloat(f)
		default:
			return fmt.Errorf("%w: unrecognised key %v", base.ErrInvalidCustomSettings, k)
		}
	}
	return nil
}

// SetDefaults sets the custom settings to their default values
func (a *Agent) SetDefaults() {
	a.fast = decimal.NewFromInt(12)
	a.slow = decimal.NewFromInt(26)
	a.signalPeriod = decimal.NewFromInt(9)
}
