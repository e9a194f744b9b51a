package kline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCandles(tb testing.TB, closes ...float64) []Candle {
	tb.Helper()
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]Candle, len(closes))
	for i := range closes {
		c := decimal.NewFromFloat(closes[i])
		candles[i] = Candle{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: decimal.NewFromInt(1),
		}
	}
	return candles
}

func TestNewSeries(t *testing.T) {
	t.Parallel()
	s, err := NewSeries(makeCandles(t, 100, 101, 102))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = NewSeries(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)

	candles := makeCandles(t, 100, 101)
	candles[1].Time = time.Time{}
	_, err = NewSeries(candles)
	assert.ErrorIs(t, err, ErrMissingTimestamp)

	candles = makeCandles(t, 100, 101)
	candles[1].Time = candles[0].Time
	_, err = NewSeries(candles)
	assert.ErrorIs(t, err, ErrUnorderedSeries)

	candles = makeCandles(t, 100, 101)
	candles[1].Close = decimal.Zero
	_, err = NewSeries(candles)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCandleAndLatest(t *testing.T) {
	t.Parallel()
	s, err := NewSeries(makeCandles(t, 100, 101, 102))
	require.NoError(t, err)

	c, err := s.Candle(1)
	require.NoError(t, err)
	assert.True(t, c.Close.Equal(decimal.NewFromInt(101)))

	_, err = s.Candle(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.Candle(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.True(t, latest.Close.Equal(decimal.NewFromInt(102)))
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	s, err := NewSeries(makeCandles(t, 100, 101, 102, 103))
	require.NoError(t, err)

	view, err := s.Truncate(2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Len())
	latest, err := view.Latest()
	require.NoError(t, err)
	assert.True(t, latest.Close.Equal(decimal.NewFromInt(101)))
	assert.Equal(t, 4, s.Len())

	_, err = s.Truncate(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.Truncate(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHasDataAtTime(t *testing.T) {
	t.Parallel()
	s, err := NewSeries(makeCandles(t, 100, 101, 102))
	require.NoError(t, err)

	c, err := s.Candle(1)
	require.NoError(t, err)
	assert.True(t, s.HasDataAtTime(c.Time))
	assert.False(t, s.HasDataAtTime(c.Time.Add(time.Minute)))
	assert.False(t, s.HasDataAtTime(c.Time.Add(-time.Hour*48)))
}

func TestCloses(t *testing.T) {
	t.Parallel()
	s, err := NewSeries(makeCandles(t, 100, 101.5, 102))
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 101.5, 102}, s.Closes())
}
