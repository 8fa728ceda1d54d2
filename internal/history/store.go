package history

import (
	"sort"

	"agropulse/internal/model"
)

// DateLayout is the calendar-date format used by the dataset and by the
// series returned to chart clients.
const DateLayout = "2006-01-02"

// maxSeriesLen caps how many observations a series query returns. Charts
// only show the most recent quarter of data.
const maxSeriesLen = 90

// Store holds the historical price table, grouped by commodity and sorted
// chronologically. It is built once at startup and read-only afterwards.
type Store struct {
	byItem map[string][]model.HistoryRecord
	total  int
}

// NewStore groups and sorts records into a queryable store. The sort is
// stable so duplicate-date rows keep their file order.
func NewStore(records []model.HistoryRecord) *Store {
	byItem := map[string][]model.HistoryRecord{}
	for _, r := range records {
		byItem[r.ItemID] = append(byItem[r.ItemID], r)
	}
	for _, recs := range byItem {
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Date.Before(recs[j].Date)
		})
	}
	return &Store{byItem: byItem, total: len(records)}
}

// Empty reports whether the store holds no data at all. This is distinct
// from a single commodity having no rows.
func (s *Store) Empty() bool {
	return s.total == 0
}

// Rows returns the total number of stored observations.
func (s *Store) Rows() int {
	return s.total
}

// Items returns the sorted ids of all commodities with at least one row.
func (s *Store) Items() []string {
	items := make([]string, 0, len(s.byItem))
	for id := range s.byItem {
		items = append(items, id)
	}
	sort.Strings(items)
	return items
}

// Series returns the item's observations as parallel date/price slices,
// ascending by date and truncated to the most recent 90. An item with no
// rows yields empty (non-nil) slices.
func (s *Store) Series(itemID string) (dates []string, prices []float64) {
	recs := s.byItem[itemID]
	if len(recs) > maxSeriesLen {
		recs = recs[len(recs)-maxSeriesLen:]
	}
	dates = make([]string, len(recs))
	prices = make([]float64, len(recs))
	for i, r := range recs {
		dates[i] = r.Date.Format(DateLayout)
		prices[i] = r.PriceNGN
	}
	return dates, prices
}

// Stats summarizes an item's full stored price history.
type Stats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Latest float64
}

// Stats computes summary statistics over every stored row for itemID.
// ok is false when the item has no rows.
func (s *Store) Stats(itemID string) (Stats, bool) {
	recs := s.byItem[itemID]
	if len(recs) == 0 {
		return Stats{}, false
	}
	st := Stats{
		Count:  len(recs),
		Min:    recs[0].PriceNGN,
		Max:    recs[0].PriceNGN,
		Latest: recs[len(recs)-1].PriceNGN,
	}
	var sum float64
	for _, r := range recs {
		sum += r.PriceNGN
		if r.PriceNGN < st.Min {
			st.Min = r.PriceNGN
		}
		if r.PriceNGN > st.Max {
			st.Max = r.PriceNGN
		}
	}
	st.Mean = sum / float64(len(recs))
	return st, true
}
