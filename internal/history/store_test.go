package history

import (
	"testing"
	"time"

	"agropulse/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func riceRecords(n int) []model.HistoryRecord {
	records := make([]model.HistoryRecord, n)
	for i := range records {
		records[i] = model.HistoryRecord{
			ItemID:   "rice_local",
			Date:     day(i),
			PriceNGN: 40000 + float64(i)*10,
		}
	}
	return records
}

func TestSeriesTruncatesToMostRecent90(t *testing.T) {
	store := NewStore(riceRecords(120))

	dates, prices := store.Series("rice_local")
	require.Len(t, dates, 90)
	require.Len(t, prices, 90)

	// The oldest 30 observations are dropped.
	assert.Equal(t, day(30).Format(DateLayout), dates[0])
	assert.Equal(t, day(119).Format(DateLayout), dates[len(dates)-1])
	assert.Equal(t, 40000.0+30*10, prices[0])
	assert.Equal(t, 40000.0+119*10, prices[len(prices)-1])
}

func TestSeriesSortsUnorderedInput(t *testing.T) {
	store := NewStore([]model.HistoryRecord{
		{ItemID: "rice_local", Date: day(2), PriceNGN: 300},
		{ItemID: "rice_local", Date: day(0), PriceNGN: 100},
		{ItemID: "rice_local", Date: day(1), PriceNGN: 200},
	})

	dates, prices := store.Series("rice_local")
	assert.Equal(t, []string{"2023-01-01", "2023-01-02", "2023-01-03"}, dates)
	assert.Equal(t, []float64{100, 200, 300}, prices)
}

func TestSeriesDatesNonDecreasing(t *testing.T) {
	records := riceRecords(100)
	// Duplicate a date; stable sort must keep both rows.
	records = append(records, model.HistoryRecord{ItemID: "rice_local", Date: day(50), PriceNGN: 1})

	dates, _ := NewStore(records).Series("rice_local")
	for i := 1; i < len(dates); i++ {
		assert.LessOrEqual(t, dates[i-1], dates[i])
	}
}

func TestSeriesUnknownItem(t *testing.T) {
	store := NewStore(riceRecords(10))

	dates, prices := store.Series("yam_tuber")
	assert.NotNil(t, dates)
	assert.NotNil(t, prices)
	assert.Empty(t, dates)
	assert.Empty(t, prices)
}

func TestEmptyStore(t *testing.T) {
	store := NewStore(nil)
	assert.True(t, store.Empty())
	assert.Equal(t, 0, store.Rows())

	populated := NewStore(riceRecords(1))
	assert.False(t, populated.Empty())
	assert.Equal(t, 1, populated.Rows())
}

func TestItems(t *testing.T) {
	store := NewStore([]model.HistoryRecord{
		{ItemID: "yam_tuber", Date: day(0), PriceNGN: 1},
		{ItemID: "bread_loaf", Date: day(0), PriceNGN: 2},
	})
	assert.Equal(t, []string{"bread_loaf", "yam_tuber"}, store.Items())
}

func TestStats(t *testing.T) {
	store := NewStore([]model.HistoryRecord{
		{ItemID: "rice_local", Date: day(0), PriceNGN: 100},
		{ItemID: "rice_local", Date: day(1), PriceNGN: 400},
		{ItemID: "rice_local", Date: day(2), PriceNGN: 250},
	})

	stats, ok := store.Stats("rice_local")
	require.True(t, ok)
	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 250.0, stats.Mean, 1e-9)
	assert.Equal(t, 100.0, stats.Min)
	assert.Equal(t, 400.0, stats.Max)
	assert.Equal(t, 250.0, stats.Latest)

	_, ok = store.Stats("yam_tuber")
	assert.False(t, ok)
}
