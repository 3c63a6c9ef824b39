package di

import (
	"fmt"

	"StockCast/internal/domain/repository"
	"StockCast/internal/service/alphavantage"
	"StockCast/internal/service/ratelimit"
	"StockCast/internal/service/retry"
	"StockCast/internal/service/twelvedata"
	"StockCast/internal/service/yahoo"
	"StockCast/internal/usecase"
	"StockCast/pkg/config"
	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/metrics"
	"StockCast/pkg/server"
)

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideHTTPClient creates the outbound HTTP client shared by providers.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Provider.Timeout))
}

// ProvideHistorySource selects the configured provider adapter and wraps
// it with the optional local rate gate and the retry controller. Nothing
// downstream knows which variant it got.
func ProvideHistorySource(
	cfg *config.Config,
	client *xhttp.Client,
	m repository.Metrics,
	l *applogger.Logger,
) (repository.HistorySource, error) {
	var src repository.HistorySource
	switch cfg.Provider.Type {
	case "yahoo":
		src = yahoo.New(yahoo.Config{
			Endpoint: cfg.Provider.Yahoo.Endpoint,
			Range:    cfg.Provider.Yahoo.Range,
		}, client)
	case "twelvedata":
		src = twelvedata.New(twelvedata.Config{
			Endpoint:   cfg.Provider.TwelveData.Endpoint,
			APIKey:     cfg.Provider.TwelveData.APIKey,
			OutputSize: cfg.Provider.TwelveData.OutputSize,
		}, client)
	case "alphavantage":
		src = alphavantage.New(alphavantage.Config{
			Endpoint: cfg.Provider.AlphaVantage.Endpoint,
			APIKey:   cfg.Provider.AlphaVantage.APIKey,
		}, client)
	default:
		return nil, fmt.Errorf("unknown provider type %q", cfg.Provider.Type)
	}

	if cfg.Provider.Rate.Enabled {
		src = ratelimit.NewGate(src, cfg.Provider.Rate.Capacity, cfg.Provider.Rate.RefillPerSec)
	}
	if cfg.Provider.Retry.Enabled {
		src = retry.New(src, cfg.Provider.Retry.MaxAttempts, cfg.Provider.Retry.Delay, m, l)
	}
	return src, nil
}

// ProvideForecastUsecase creates the forecast pipeline use case.
func ProvideForecastUsecase(
	src repository.HistorySource,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.ForecastUsecase {
	return usecase.NewForecastUsecase(src, m, l,
		cfg.Forecast.LookbackDays,
		cfg.Forecast.HorizonDays,
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, uc *usecase.ForecastUsecase) *server.App {
	return server.New(cfg, l, uc)
}
