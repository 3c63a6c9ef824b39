package trend

import (
	"testing"

	"StockCast/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func TestFitPerfectLine(t *testing.T) {
	// close rises exactly 2 per day
	samples := []Sample{
		{X: 19723, Y: 100},
		{X: 19724, Y: 102},
		{X: 19725, Y: 104},
	}

	m, err := Fit(samples)
	require.NoError(t, err)
	require.InDelta(t, 2.0, m.Slope, 1e-9)
	require.InDelta(t, 100.0, At(m, 19723), 1e-9)
}

func TestFitNoisyLineIsDeterministic(t *testing.T) {
	samples := []Sample{
		{X: 100, Y: 10.5},
		{X: 101, Y: 9.8},
		{X: 103, Y: 11.2},
		{X: 104, Y: 10.9},
	}

	first, err := Fit(samples)
	require.NoError(t, err)
	second, err := Fit(samples)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFitEmpty(t *testing.T) {
	_, err := Fit(nil)
	require.ErrorIs(t, err, models.ErrNoData)
}

func TestFitSinglePoint(t *testing.T) {
	_, err := Fit([]Sample{{X: 19723, Y: 100}})
	require.ErrorIs(t, err, models.ErrDegenerateSeries)
}

func TestFitIdenticalOrdinals(t *testing.T) {
	_, err := Fit([]Sample{
		{X: 19723, Y: 100},
		{X: 19723, Y: 104},
	})
	require.ErrorIs(t, err, models.ErrDegenerateSeries)
}

func TestFitLargeOrdinalsStable(t *testing.T) {
	// centered sums must not lose the slope for realistic ordinals
	samples := []Sample{
		{X: 738000, Y: 50},
		{X: 738001, Y: 51},
		{X: 738002, Y: 52},
		{X: 738003, Y: 53},
	}

	m, err := Fit(samples)
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.Slope, 1e-9)
}
