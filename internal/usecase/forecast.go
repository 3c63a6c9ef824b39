package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	"StockCast/internal/service/history"
	"StockCast/internal/service/trend"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/util"
)

// ForecastUsecase runs the whole pipeline for one ticker: fetch,
// normalize, fit, project. Every call re-fetches and re-fits; the only
// state here is read-only wiring, so one instance serves all requests.
type ForecastUsecase struct {
	source       repository.HistorySource
	metrics      repository.Metrics
	logger       *applogger.Logger
	lookbackDays int
	horizonDays  int
	now          func() time.Time
}

func NewForecastUsecase(
	source repository.HistorySource,
	metrics repository.Metrics,
	logger *applogger.Logger,
	lookbackDays int,
	horizonDays int,
) *ForecastUsecase {
	if horizonDays < 1 {
		horizonDays = 7
	}
	return &ForecastUsecase{
		source:       source,
		metrics:      metrics,
		logger:       logger,
		lookbackDays: lookbackDays,
		horizonDays:  horizonDays,
		now:          time.Now,
	}
}

// WithClock overrides the clock used for the trailing window. Tests only.
func (uc *ForecastUsecase) WithClock(now func() time.Time) *ForecastUsecase {
	uc.now = now
	return uc
}

func (uc *ForecastUsecase) Forecast(ctx context.Context, ticker string) (*models.Forecast, error) {
	start := time.Now()

	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		uc.record("invalid_input")
		return nil, models.ErrTickerRequired
	}

	uc.metrics.RecordFetchAttempt(uc.source.Name())
	raw, err := uc.source.History(ctx, ticker)
	if err != nil {
		return nil, uc.fail(ticker, err)
	}

	series, err := history.Normalize(raw, uc.lookbackDays, uc.now())
	if err != nil {
		return nil, uc.fail(ticker, err)
	}

	samples := make([]trend.Sample, len(series))
	for i, p := range series {
		samples[i] = trend.Sample{
			X: float64(util.DateOrdinal(p.Date)),
			Y: p.Close,
		}
	}

	model, err := trend.Fit(samples)
	if err != nil {
		return nil, uc.fail(ticker, err)
	}

	lastDate := series[len(series)-1].Date
	prediction := trend.Project(model, lastDate, uc.horizonDays)

	uc.metrics.RecordForecast(uc.source.Name(), "ok")
	uc.metrics.RecordLastForecast(ticker, prediction[0].Price)
	uc.metrics.RecordLatency("forecast", time.Since(start).Seconds())
	uc.logger.Info("forecast generated",
		applogger.String("ticker", ticker),
		applogger.String("provider", uc.source.Name()),
		applogger.Int("series_points", len(series)),
		applogger.Float64("slope", model.Slope),
		applogger.Duration("duration_ms", time.Since(start)),
	)

	return &models.Forecast{
		Ticker:     ticker,
		Provider:   uc.source.Name(),
		Generated:  uc.now().UTC(),
		Prediction: prediction,
	}, nil
}

func (uc *ForecastUsecase) fail(ticker string, err error) error {
	uc.metrics.RecordForecast(uc.source.Name(), "error")
	uc.record(errorKind(err))
	uc.logger.Warn("forecast failed",
		applogger.String("ticker", ticker),
		applogger.String("provider", uc.source.Name()),
		applogger.String("kind", errorKind(err)),
		applogger.Error(err),
	)
	return err
}

func (uc *ForecastUsecase) record(kind string) {
	uc.metrics.RecordError(kind)
}

// errorKind maps pipeline errors onto low-cardinality metric labels.
func errorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrTickerRequired):
		return "invalid_input"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	case errors.Is(err, models.ErrUpstreamExhausted):
		return "exhausted"
	case errors.Is(err, models.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, models.ErrMalformed):
		return "malformed"
	case errors.Is(err, models.ErrNoData):
		return "no_data"
	case errors.Is(err, models.ErrDegenerateSeries):
		return "degenerate_series"
	default:
		return "internal"
	}
}
