package agents

import (
	"errors"

	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/signal"
)

// ErrAgentNotFound is returned when the requested agent name is not
// registered
var ErrAgentNotFound = errors.New("agent not found")

// Handler defines what an agent must implement to turn a candle series
// into a decision stream
type Handler interface {
	// Name returns the registry name of the agent
	Name() string
	// Description provides a nice overview of the agent
	Description() string
	// Act walks the series and emits one decision per candle once the
	// agent has enough data to produce its indicator
	Act(series *kline.Series) (signal.Stream, error)
	// SetCustomSettings applies agent-specific configuration
	SetCustomSettings(settings map[string]any) error
	// SetDefaults sets the custom settings to their default values
	SetDefaults()
}
