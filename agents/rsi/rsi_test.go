package rsi

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidal-labs/coinsim/agents/base"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/signal"
)

func makeSeries(t *testing.T, closes []float64) *kline.Series {
	t.Helper()
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]kline.Candle, len(closes))
	for i := range closes {
		candles[i] = kline.Candle{
			Time:  start.Add(time.Duration(i) * time.Hour),
			Close: decimal.NewFromFloat(closes[i]),
		}
	}
	s, err := kline.NewSeries(candles)
	require.NoError(t, err)
	return s
}

func oscillating(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/3)
	}
	return closes
}

func TestAct(t *testing.T) {
	t.Parallel()
	a := new(Agent)
	a.SetDefaults()

	series := makeSeries(t, oscillating(60))
	stream, err := a.Act(series)
	require.NoError(t, err)
	assert.Len(t, stream, series.Len()-14)
	require.NoError(t, stream.Validate(series))
	for i := range stream {
		assert.False(t, stream[i].Strength.IsNegative())
	}
}

func TestActWarmup(t *testing.T) {
	t.Parallel()
	a := new(Agent)
	a.SetDefaults()

	_, err := a.Act(makeSeries(t, oscillating(10)))
	assert.ErrorIs(t, err, base.ErrTooFewCandles)
	_, err = a.Act(nil)
	assert.ErrorIs(t, err, kline.ErrEmptySeries)
}

func TestActExtremes(t *testing.T) {
	t.Parallel()
	a := new(Agent)
	a.SetDefaults()

	// a monotonic rally pins the RSI against the high watermark
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	stream, err := a.Act(makeSeries(t, closes))
	require.NoError(t, err)
	require.NotEmpty(t, stream)
	for i := range stream {
		assert.Equal(t, signal.Sell, stream[i].Action)
	}
}

func TestSetCustomSettings(t *testing.T) {
	t.Parallel()
	a := new(Agent)
	a.SetDefaults()

	err := a.SetCustomSettings(map[string]any{
		"rsi-period": 10.0,
		"rsi-low":    20.0,
		"rsi-high":   80.0,
	})
	require.NoError(t, err)
	assert.True(t, a.period.Equal(decimal.NewFromInt(10)))
	assert.True(t, a.low.Equal(decimal.NewFromInt(20)))
	assert.True(t, a.high.Equal(decimal.NewFromInt(80)))

	err = a.SetCustomSettings(map[string]any{"rsi-wat": 1.0})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)
	err = a.SetCustomSettings(map[string]any{"rsi-period": "fourteen"})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)
}
