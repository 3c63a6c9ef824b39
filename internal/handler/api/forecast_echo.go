package api

import (
	"errors"

	"StockCast/internal/domain/models"
	"StockCast/internal/usecase"
	xhttp "StockCast/pkg/http"
	xlogger "StockCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastEchoHandler exposes the forecast pipeline over HTTP.
type ForecastEchoHandler struct {
	logger *xlogger.Logger
	uc     *usecase.ForecastUsecase
}

func NewForecastEchoHandler(logger *xlogger.Logger, uc *usecase.ForecastUsecase) *ForecastEchoHandler {
	return &ForecastEchoHandler{logger: logger, uc: uc}
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/predict-stock", h.Predict)
}

func (h *ForecastEchoHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verrs := xhttp.ReadAndValidateRequest(c, req); verrs != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(verrs[0].Message))
	}

	res, err := h.uc.Forecast(c.Request().Context(), req.Ticker)
	if err != nil {
		return xhttp.AppErrorResponse(c, h.classify(err))
	}
	return xhttp.SuccessResponse(c, models.NewPredictResponse(res))
}

// classify maps pipeline errors to their HTTP classification: invalid
// input 400, unknown ticker / no data 404, rate limiting 503, everything
// else 500.
func (h *ForecastEchoHandler) classify(err error) *xhttp.AppError {
	switch {
	case errors.Is(err, models.ErrTickerRequired):
		return xhttp.BadRequestError(models.ErrTickerRequired.Error())
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrNoData):
		return xhttp.NotFoundError("invalid ticker or no data found").WithError(err)
	case errors.Is(err, models.ErrUpstreamExhausted), errors.Is(err, models.ErrRateLimited):
		return xhttp.ServiceUnavailableError("market data provider unavailable, try again later").WithError(err)
	default:
		h.logger.Error("forecast handler error", xlogger.Error(err))
		return xhttp.InternalError("something went wrong").WithError(err)
	}
}
