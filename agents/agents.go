// Package agents hosts the signal-generation agents and their registry.
// Agents are pure transforms over the candle series; everything stateful
// lives on the investor side
package agents

import (
	"fmt"
	"strings"

	"github.com/tidal-labs/coinsim/agents/bbands"
	"github.com/tidal-labs/coinsim/agents/dca"
	"github.com/tidal-labs/coinsim/agents/dmac"
	"github.com/tidal-labs/coinsim/agents/macd"
	"github.com/tidal-labs/coinsim/agents/rsi"
)

// LoadAgentByName returns a defaulted agent matching the name,
// case-insensitively
func LoadAgentByName(name string) (Handler, error) {
	all := GetAgents()
	for i := range all {
		if !strings.EqualFold(name, all[i].Name()) {
			continue
		}
		all[i].SetDefaults()
		return all[i], nil
	}
	return nil, fmt.Errorf("%w: %v", ErrAgentNotFound, name)
}

// GetAgents returns one instance of every registered agent
func GetAgents() []Handler {
	return []Handler{
		new(rsi.Agent),
		new(dmac.Agent),
		new(macd.Agent),
		new(bbands.Agent),
		new(dca.Agent),
	}
}
