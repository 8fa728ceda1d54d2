package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"agropulse/internal/model"
)

// LoadCSV parses the historical dataset at path. The file must have a
// header row with at least item_id, date and price_ngn columns; any other
// columns are ignored. Dates are calendar dates (YYYY-MM-DD).
//
// Callers treat any error as "no historical data": the service degrades to
// an empty store rather than refusing to start.
func LoadCSV(path string) ([]model.HistoryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"item_id", "date", "price_ngn"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", path, required)
		}
	}

	var records []model.HistoryRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line+1, err)
		}
		line++

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, cols map[string]int) (model.HistoryRecord, error) {
	get := func(name string) (string, error) {
		i := cols[name]
		if i >= len(row) {
			return "", fmt.Errorf("missing %s value", name)
		}
		return row[i], nil
	}

	itemID, err := get("item_id")
	if err != nil {
		return model.HistoryRecord{}, err
	}
	rawDate, err := get("date")
	if err != nil {
		return model.HistoryRecord{}, err
	}
	rawPrice, err := get("price_ngn")
	if err != nil {
		return model.HistoryRecord{}, err
	}

	date, err := time.Parse(DateLayout, rawDate)
	if err != nil {
		return model.HistoryRecord{}, fmt.Errorf("parse date %q: %w", rawDate, err)
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return model.HistoryRecord{}, fmt.Errorf("parse price %q: %w", rawPrice, err)
	}

	return model.HistoryRecord{ItemID: itemID, Date: date, PriceNGN: price}, nil
}
