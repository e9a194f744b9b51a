package bbands

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
	Name      = "bbands"
	periodKey = "bbands-period"
	devUpKey  = "bbands-dev-up"
	devDnKey  = "bbands-dev-dn"

	description = `Bollinger bands chart a volatility envelope around a moving average: a close at or below the lower band buys, a close at or above the upper band sells`
)

// Agent signals on closes touching the Bollinger band envelope
type Agent struct {
	base.Agent
	period decimal.Decimal
	devUp  decimal.Decimal
	devDn  decimal.Decimal
}

// Name returns the agent name
func (a *Agent) Name() string {
	return Name
}

// Description provides a nice overview of the agent
func (a *Agent) Description() string {
	return description
}

// Act emits one decision per candle once the band period has warmed up.
// Strength is the close's distance from the middle band relative to the
// band half-width
func (a *Agent) Act(series *kline.Series) (signal.Stream, error) {
	period := int(a.period.IntPart())
	if err := a.CheckWarmup(series, period); err != nil {
		return nil, err
	}

	upper, middle, lower := indicators.BBANDS(series.Closes(),
		period,
		a.devUp.InexactFloat64(),
		a.devDn.InexactFloat64(),
		indicators.Sma)

	var resp signal.Stream
	for i := period; i < series.Len(); i++ {
		candle, err := series.Candle(i)
		if err != nil {
			return nil, err
		}
		d := signal.Decision{Time: candle.Time, Action: signal.Hold}
		close := candle.Close.InexactFloat64()
		halfWidth := upper[i] - middle[i]
		switch {
		case halfWidth == 0:
			// flat market, the envelope has collapsed onto the average
		case close >= upper[i]:
			d.Action = signal.Sell
			d.Strength = a.Strength((close - middle[i]) / halfWidth)
		case close <= lower[i]:
			d.Action = signal.Buy
			d.Strength = a.Strength((close - middle[i]) / halfWidth)
		}
		resp = append(resp, d)
	}
	return resp, nil
}

// SetCustomSettings allows a user to modify the band parameters in their
// config
func (a *Agent) SetCustomSettings(settings map[string]any) error {
	for k, v := range settings {
		f, err := base.Float(k, v)
		if err != nil {
			return err
		}
		switch k {
		case periodKey:
			a.period = decimal.NewFromFloat(f)
		case devUpKey:
			a.devUp = decimal.NewFromFloat(f)
		case devDnKey:
			a.devDn = decimal.NewFromFloat(f)
		default:
			return fmt.Errorf("%w: unrecognised key %v", base.ErrInvalidCustomSettings, k)
		}
	}
	return nil
}

// SetDefaults sets the custom settings to their default values
func (a *Agent) SetDefaults() {
	a.period = decimal.NewFromInt(20)
	a.devUp = decimal.NewFromInt(2)
	a.devDn = decimal.NewFromInt(2)
}
