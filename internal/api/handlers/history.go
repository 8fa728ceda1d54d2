package handlers

import (
	"fmt"
	"net/http"

	"agropulse/internal/api/models"
	"agropulse/internal/history"

	"github.com/gin-gonic/gin"
)

const noHistoryMessage = "No historical data available on server."

// HistoryHandler handles price-history queries.
type HistoryHandler struct {
	store *history.Store
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(s *history.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// GetHistory handles GET /history/:item_id
//
// A globally empty store yields the {"error": ...} payload; an unknown item
// on a populated store yields empty arrays. The two cases are deliberately
// distinct so clients can tell "server has no data" from "no data for this
// item".
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	if h.store.Empty() {
		c.JSON(http.StatusOK, models.HistoryUnavailableResponse{Error: noHistoryMessage})
		return
	}

	dates, prices := h.store.Series(c.Param("item_id"))
	c.JSON(http.StatusOK, models.HistoryResponse{Dates: dates, Prices: prices})
}

// GetStats handles GET /history/:item_id/stats
func (h *HistoryHandler) GetStats(c *gin.Context) {
	if h.store.Empty() {
		c.JSON(http.StatusOK, models.HistoryUnavailableResponse{Error: noHistoryMessage})
		return
	}

	itemID := c.Param("item_id")
	stats, ok := h.store.Stats(itemID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_HISTORY",
				Message: fmt.Sprintf("no history recorded for %q", itemID),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		ItemID:      itemID,
		Count:       stats.Count,
		MeanPrice:   stats.Mean,
		MinPrice:    stats.Min,
		MaxPrice:    stats.Max,
		LatestPrice: stats.Latest,
	})
}
