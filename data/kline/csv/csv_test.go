package csv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidal-labs/coinsim/data/kline"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candles.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadSeries(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `timestamp,open,high,low,close,volume
2021-01-01 00:00:00,100,105,95,101,12.5
2021-01-01 01:00:00,101,106,96,102,13
2021-01-01 02:00:00,102,107,97,103,14
`)
	s, err := LoadSeries(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	c, err := s.Candle(0)
	require.NoError(t, err)
	assert.True(t, c.Close.Equal(decimal.NewFromInt(101)))
	assert.True(t, c.Volume.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), c.Time.UTC())
}

func TestLoadSeriesUnixTimestamps(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `1609459200,100,105,95,101,12.5
1609462800,101,106,96,102,13
`)
	s, err := LoadSeries(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	c, err := s.Candle(0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), c.Time)
}

func TestLoadSeriesBadRow(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `2021-01-01 00:00:00,100,105,95,101,12.5
2021-01-01 01:00:00,not-a-number,106,96,102,13
`)
	_, err := LoadSeries(path)
	assert.ErrorIs(t, err, errBadRow)
}

func TestLoadSeriesBadFirstRow(t *testing.T) {
	t.Parallel()
	// a malformed data row is not mistaken for a header when its first
	// field parses as a timestamp
	path := writeFile(t, `2021-01-01 00:00:00,not-a-number,105,95,101,12.5
2021-01-01 01:00:00,101,106,96,102,13
`)
	_, err := LoadSeries(path)
	assert.ErrorIs(t, err, errBadRow)
}

func TestLoadSeriesHeaderOnly(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "timestamp,open,high,low,close,volume\n")
	_, err := LoadSeries(path)
	assert.ErrorIs(t, err, ErrNoUsableData)
}

func TestLoadSeriesMissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadSeries(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadSeriesUnorderedRows(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `2021-01-01 01:00:00,101,106,96,102,13
2021-01-01 00:00:00,100,105,95,101,12.5
`)
	_, err := LoadSeries(path)
	assert.ErrorIs(t, err, kline.ErrUnorderedSeries)
}
