package repository

import (
	"context"

	"StockCast/internal/domain/models"
)

// HistorySource fetches a raw historical close series for one ticker with a
// single outbound call. Implementations classify failures with the sentinel
// errors in domain/models; nothing past this boundary branches on which
// provider produced the series.
type HistorySource interface {
	Name() string
	History(ctx context.Context, ticker string) ([]models.HistoricalPoint, error)
}

// Metrics abstracts metric recording so use cases don't depend on Prometheus.
type Metrics interface {
	RecordFetchAttempt(provider string)
	RecordRetry(provider string)
	RecordForecast(provider, status string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordLastForecast(ticker string, price float64)
}
