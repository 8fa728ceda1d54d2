package model

import (
	"errors"
	"fmt"
	"math"
)

// Bundle is everything needed to forecast one commodity: the trained
// regressor, the fitted scaler, and the training-time feature column order.
// Bundles are deserialized once at startup and never mutated, so they are
// safe to share across requests.
type Bundle struct {
	Model    LinearModel    `json:"model"`
	Scaler   StandardScaler `json:"scaler"`
	Features []string       `json:"features"`
}

// LinearModel is a trained linear regressor over scaled features. For this
// service its output is a log return (log of next-day/current price ratio),
// not a price.
type LinearModel struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Predict evaluates the model on one scaled feature vector.
func (m LinearModel) Predict(x []float64) (float64, error) {
	if len(x) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature shape mismatch: got %d values, model expects %d", len(x), len(m.Coefficients))
	}
	y := m.Intercept
	for i, v := range x {
		y += m.Coefficients[i] * v
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("model produced non-finite output %v", y)
	}
	return y, nil
}

// StandardScaler standardizes a feature vector with the per-column mean and
// scale learned at training time: (x - mean) / scale, position by position.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform returns a scaled copy of x. x itself is not modified.
func (s StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) || len(x) != len(s.Scale) {
		return nil, fmt.Errorf("feature shape mismatch: got %d values, scaler expects %d", len(x), len(s.Mean))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}

// Validate checks the internal consistency of a loaded bundle. The feature
// order itself is a training-time contract that cannot be verified here;
// only lengths and name uniqueness are checkable.
func (b Bundle) Validate() error {
	if len(b.Features) == 0 {
		return errors.New("bundle has no features")
	}
	seen := make(map[string]bool, len(b.Features))
	for _, name := range b.Features {
		if name == "" {
			return errors.New("bundle has an empty feature name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate feature name %q", name)
		}
		seen[name] = true
	}
	if got := len(b.Model.Coefficients); got != len(b.Features) {
		return fmt.Errorf("model has %d coefficients for %d features", got, len(b.Features))
	}
	if len(b.Scaler.Mean) != len(b.Features) || len(b.Scaler.Scale) != len(b.Features) {
		return fmt.Errorf("scaler shape %d/%d does not match %d features",
			len(b.Scaler.Mean), len(b.Scaler.Scale), len(b.Features))
	}
	for i, s := range b.Scaler.Scale {
		if s == 0 {
			return fmt.Errorf("scaler scale is zero for feature %q", b.Features[i])
		}
	}
	return nil
}
