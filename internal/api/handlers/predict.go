package handlers

import (
	"errors"
	"net/http"

	"agropulse/internal/api/models"
	"agropulse/internal/forecast"

	"github.com/gin-gonic/gin"
)

// PredictHandler handles forecast requests.
type PredictHandler struct {
	service *forecast.Service
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(s *forecast.Service) *PredictHandler {
	return &PredictHandler{service: s}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	pred, err := h.service.Predict(req.ItemID, req.CurrentPrice, req.FuelPrice, req.DieselPrice)
	if err != nil {
		var notFound *forecast.UnknownCommodityError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "MODEL_NOT_FOUND",
					Message: notFound.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PREDICTION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.PredictResponse{
		Commodity:             pred.ItemID,
		CurrentPrice:          pred.CurrentPrice,
		PredictedPriceNextDay: pred.PredictedPrice,
		PredictedChangePct:    pred.ChangePct,
	})
}
