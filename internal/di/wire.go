//go:build wireinject
// +build wireinject

package di

import (
	"StockCast/pkg/config"
	"StockCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideMetrics,
		ProvideLogger,
		ProvideHTTPClient,
		ProvideHistorySource,
		ProvideForecastUsecase,
		ProvideApp,
	)
	return &server.App{}, nil
}
