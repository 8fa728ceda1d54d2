package model

import "time"

// HistoryRecord is one observed price for a commodity on a given date.
// The source dataset can contain multiple rows for the same (item, date)
// pair; they are kept as-is.
type HistoryRecord struct {
	ItemID   string
	Date     time.Time
	PriceNGN float64
}
