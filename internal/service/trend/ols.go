package trend

import (
	"math"

	"StockCast/internal/domain/models"
)

// Sample is one (feature, target) observation. The regression input is
// always this flat shape: X is the date ordinal, Y the closing price.
type Sample struct {
	X float64
	Y float64
}

// Fit computes the closed-form ordinary least squares line over samples.
// The sums are centered on the means so that large date ordinals don't
// lose precision. A series with fewer than two distinct X values has no
// defined slope and is rejected before any division happens.
func Fit(samples []Sample) (models.TrendModel, error) {
	if len(samples) == 0 {
		return models.TrendModel{}, models.ErrNoData
	}

	var sumX, sumY float64
	for _, s := range samples {
		sumX += s.X
		sumY += s.Y
	}
	n := float64(len(samples))
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for _, s := range samples {
		dx := s.X - meanX
		sxx += dx * dx
		sxy += dx * (s.Y - meanY)
	}
	if sxx == 0 {
		return models.TrendModel{}, models.ErrDegenerateSeries
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return models.TrendModel{}, models.ErrDegenerateSeries
	}
	return models.TrendModel{Slope: slope, Intercept: intercept}, nil
}

// At evaluates the fitted line at feature value x.
func At(m models.TrendModel, x float64) float64 {
	return m.Slope*x + m.Intercept
}
