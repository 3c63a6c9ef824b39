package trend

import (
	"testing"
	"time"

	"StockCast/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectPerfectTrend(t *testing.T) {
	samples := []Sample{
		{X: 19723, Y: 100}, // 2024-01-01
		{X: 19724, Y: 102},
		{X: 19725, Y: 104},
	}
	m, err := Fit(samples)
	require.NoError(t, err)

	got := Project(m, date(2024, 1, 3), 7)
	require.Len(t, got, 7)

	require.Equal(t, date(2024, 1, 4), got[0].Date)
	require.Equal(t, 106.00, got[0].Price)
	require.Equal(t, date(2024, 1, 10), got[6].Date)
	require.Equal(t, 118.00, got[6].Price)

	for i := 1; i < len(got); i++ {
		require.Equal(t, got[i-1].Date.AddDate(0, 0, 1), got[i].Date, "dates must be contiguous")
		require.InDelta(t, 2.00, got[i].Price-got[i-1].Price, 1e-9)
	}
}

func TestProjectIdempotent(t *testing.T) {
	m := models.TrendModel{Slope: 0.37, Intercept: -7000.123}
	first := Project(m, date(2024, 6, 1), 7)
	second := Project(m, date(2024, 6, 1), 7)
	require.Equal(t, first, second)
}

func TestProjectRoundsHalfAwayFromZero(t *testing.T) {
	up := Project(models.TrendModel{Slope: 0, Intercept: 2.675}, date(2024, 1, 1), 1)
	require.Equal(t, 2.68, up[0].Price)

	down := Project(models.TrendModel{Slope: 0, Intercept: -2.675}, date(2024, 1, 1), 1)
	require.Equal(t, -2.68, down[0].Price)
}

func TestProjectHorizonLengthIndependentOfInput(t *testing.T) {
	m := models.TrendModel{Slope: 1, Intercept: 0}
	require.Len(t, Project(m, date(2024, 1, 1), 7), 7)
	require.Len(t, Project(m, date(2024, 1, 1), 30), 30)
}

func TestProjectCrossesMonthBoundary(t *testing.T) {
	m := models.TrendModel{Slope: 0, Intercept: 10}
	got := Project(m, date(2024, 1, 29), 7)
	require.Equal(t, date(2024, 1, 30), got[0].Date)
	require.Equal(t, date(2024, 2, 5), got[6].Date) // 2024 is a leap year
}
