package models

// HealthResponse is the GET / payload.
type HealthResponse struct {
	Status               string   `json:"status"`
	ModelsAvailable      []string `json:"models_available"`
	HistoryDataAvailable bool     `json:"history_data_available"`
}

// PredictResponse mirrors the payload consumed by the prediction dashboard.
type PredictResponse struct {
	Commodity             string  `json:"commodity"`
	CurrentPrice          float64 `json:"current_price"`
	PredictedPriceNextDay float64 `json:"predicted_price_next_day"`
	PredictedChangePct    float64 `json:"predicted_change_pct"`
}

// HistoryResponse carries parallel date/price series for charting.
type HistoryResponse struct {
	Dates  []string  `json:"dates"`
	Prices []float64 `json:"prices"`
}

// HistoryUnavailableResponse is returned when the server has no historical
// data at all. Clients key off the "error" field, not the status code, so
// this keeps the original payload shape.
type HistoryUnavailableResponse struct {
	Error string `json:"error"`
}

// StatsResponse summarizes an item's stored price history.
type StatsResponse struct {
	ItemID      string  `json:"item_id"`
	Count       int     `json:"count"`
	MeanPrice   float64 `json:"mean_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	LatestPrice float64 `json:"latest_price"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
