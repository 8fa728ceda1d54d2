package forecast

import (
	"fmt"
	"math"
	"strings"

	"agropulse/internal/warehouse"
)

// Driver feature names recognized when rebuilding the model input vector.
// The commodity's own autoregressive slot is "<item_id>_lag_1".
const (
	fuelFeature   = "fuel_lag_1"
	dieselFeature = "diesel_lag_1"
)

// UnknownCommodityError reports a forecast request for a commodity with no
// trained model, along with the ids that are available.
type UnknownCommodityError struct {
	ItemID    string
	Available []string
}

func (e *UnknownCommodityError) Error() string {
	return fmt.Sprintf("model not found for %q, available: [%s]", e.ItemID, strings.Join(e.Available, ", "))
}

// Prediction is the outcome of one next-day forecast.
type Prediction struct {
	ItemID         string
	CurrentPrice   float64
	PredictedPrice float64 // next-day price, rounded to 2 decimals
	ChangePct      float64 // 100 * predicted log return, rounded to 2 decimals
}

// Service produces next-day price forecasts from the loaded model
// warehouse. It only reads immutable state and is safe for concurrent use.
type Service struct {
	warehouse *warehouse.Warehouse
}

func New(w *warehouse.Warehouse) *Service {
	return &Service{warehouse: w}
}

// Predict forecasts the next-day price of itemID given current market
// conditions.
//
// The models are trained on log-transformed drivers, so each recognized
// driver slot is filled with ln(price) when that price is strictly
// positive. A non-positive price carries no signal and leaves its slot at
// the neutral zero value; a genuine zero price is therefore
// indistinguishable from a missing one.
func (s *Service) Predict(itemID string, currentPrice, fuelPrice, dieselPrice float64) (Prediction, error) {
	bundle, ok := s.warehouse.Get(itemID)
	if !ok {
		return Prediction{}, &UnknownCommodityError{ItemID: itemID, Available: s.warehouse.Items()}
	}

	for _, v := range []float64{currentPrice, fuelPrice, dieselPrice} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Prediction{}, fmt.Errorf("non-finite input price %v", v)
		}
	}

	// Rebuild the input vector in the training-time column order. Slots the
	// model was trained with but that carry no current signal stay zero.
	vector := make([]float64, len(bundle.Features))
	targetFeature := itemID + "_lag_1"
	for i, name := range bundle.Features {
		switch name {
		case fuelFeature:
			vector[i] = logOrZero(fuelPrice)
		case dieselFeature:
			vector[i] = logOrZero(dieselPrice)
		case targetFeature:
			vector[i] = logOrZero(currentPrice)
		}
	}

	scaled, err := bundle.Scaler.Transform(vector)
	if err != nil {
		return Prediction{}, fmt.Errorf("scale features for %q: %w", itemID, err)
	}
	logReturn, err := bundle.Model.Predict(scaled)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict %q: %w", itemID, err)
	}

	// The model outputs a log return, so next_price = current * e^r.
	return Prediction{
		ItemID:         itemID,
		CurrentPrice:   currentPrice,
		PredictedPrice: round2(currentPrice * math.Exp(logReturn)),
		ChangePct:      round2(logReturn * 100),
	}, nil
}

func logOrZero(price float64) float64 {
	if price > 0 {
		return math.Log(price)
	}
	return 0
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
