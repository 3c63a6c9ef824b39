package trend

import (
	"time"

	"StockCast/internal/domain/models"
	"StockCast/pkg/util"

	"github.com/shopspring/decimal"
)

// Project evaluates the fitted model over the horizonDays calendar days
// following lastDate and returns exactly that many points in date order.
// Prices are rounded to 2 decimal places, half away from zero.
func Project(m models.TrendModel, lastDate time.Time, horizonDays int) []models.ForecastPoint {
	last := util.Midnight(lastDate)
	out := make([]models.ForecastPoint, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		d := last.AddDate(0, 0, i)
		raw := At(m, float64(util.DateOrdinal(d)))
		price, _ := decimal.NewFromFloat(raw).Round(2).Float64()
		out = append(out, models.ForecastPoint{Date: d, Price: price})
	}
	return out
}
