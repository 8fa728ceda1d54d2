package models

// PredictRequest is the body of POST /predict. Field names are part of the
// public contract shared with the dashboard front-ends.
type PredictRequest struct {
	ItemID       string  `json:"item_id" binding:"required"`
	CurrentPrice float64 `json:"current_price" binding:"min=0"`
	FuelPrice    float64 `json:"fuel_price" binding:"min=0"`
	DieselPrice  float64 `json:"diesel_price" binding:"min=0"`
}
