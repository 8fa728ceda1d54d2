package handlers

import (
	"net/http"

	"agropulse/internal/api/models"
	"agropulse/internal/history"
	"agropulse/internal/warehouse"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and which artifacts were loaded.
type HealthHandler struct {
	warehouse *warehouse.Warehouse
	store     *history.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(w *warehouse.Warehouse, s *history.Store) *HealthHandler {
	return &HealthHandler{warehouse: w, store: s}
}

// Home handles GET /
func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:               "Online",
		ModelsAvailable:      h.warehouse.Items(),
		HistoryDataAvailable: !h.store.Empty(),
	})
}
