// Package csv loads candle data from CSV files, the offline stand-in for
// exchange data retrieval which lives outside this repository
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidal-labs/coinsim/common"
	"github.com/tidal-labs/coinsim/data/kline"
	"github.com/tidal-labs/coinsim/log"
)

var (
	// ErrNoUsableData is returned when the file contains no candle rows
	ErrNoUsableData = errors.New("no usable candle rows in csv file")
	errBadRow       = errors.New("csv candle row could not be parsed")
)

const fieldCount = 6

// LoadSeries reads a candle series from a CSV file with rows of
// timestamp,open,high,low,close,volume. The timestamp may be RFC3339,
// "2006-01-02 15:04:05" or unix seconds. A single header row is skipped
func LoadSeries(path string) (*kline.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = fieldCount

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	candles := make([]kline.Candle, 0, len(records))
	for i := range records {
		c, err := parseRow(records[i])
		if err != nil {
			// only a row whose first field is not a timestamp at all is a
			// header; a data row with a bad price field is still an error
			if i == 0 && isHeaderRow(records[0]) {
				continue
			}
			return nil, fmt.Errorf("%w: row %v %v", errBadRow, i+1, err)
		}
		candles = append(candles, c)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w from %v", ErrNoUsableData, path)
	}
	log.Debugf(log.Data, "loaded %v candles from %v", len(candles), path)

	return kline.NewSeries(candles)
}

func isHeaderRow(record []string) bool {
	_, err := parseTimestamp(record[0])
	return err != nil
}

func parseRow(record []string) (kline.Candle, error) {
	t, err := parseTimestamp(record[0])
	if err != nil {
		return kline.Candle{}, err
	}
	fields := make([]decimal.Decimal, fieldCount-1)
	for i := 1; i < fieldCount; i++ {
		fields[i-1], err = decimal.NewFromString(record[i])
		if err != nil {
			return kline.Candle{}, err
		}
	}
	return kline.Candle{
		Time:   t,
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}

func parseTimestamp(field string) (time.Time, error) {
	if unix, err := strconv.ParseInt(field, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, field); err == nil {
		return t, nil
	}
	return time.Parse(common.SimpleTimeFormat, field)
}
