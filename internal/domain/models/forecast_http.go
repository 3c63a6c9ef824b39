package models

// Requests and responses for the forecast HTTP endpoint. Defined in domain
// for consistency and reuse.

type PredictRequest struct {
	Ticker string `json:"ticker" validate:"required"`
}

// PredictionEntry is the wire shape of one forecast point.
type PredictionEntry struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
}

type PredictResponse struct {
	Ticker     string            `json:"ticker"`
	Prediction []PredictionEntry `json:"prediction"`
}

// ErrorResponse is the wire shape of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

const dateLayout = "2006-01-02"

// NewPredictResponse converts a domain forecast into its wire shape.
func NewPredictResponse(f *Forecast) *PredictResponse {
	out := &PredictResponse{
		Ticker:     f.Ticker,
		Prediction: make([]PredictionEntry, 0, len(f.Prediction)),
	}
	for _, p := range f.Prediction {
		out.Prediction = append(out.Prediction, PredictionEntry{
			Date:           p.Date.Format(dateLayout),
			PredictedPrice: p.Price,
		})
	}
	return out
}
