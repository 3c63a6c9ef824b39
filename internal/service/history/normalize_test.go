package history

import (
	"math"
	"testing"
	"time"

	"StockCast/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeSortsAscending(t *testing.T) {
	raw := []models.HistoricalPoint{
		{Date: day(2024, 1, 3), Close: 104},
		{Date: day(2024, 1, 1), Close: 100},
		{Date: day(2024, 1, 2), Close: 102},
	}
	got, err := Normalize(raw, 0, day(2024, 1, 4))
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, day(2024, 1, 1), got[0].Date)
	require.Equal(t, day(2024, 1, 2), got[1].Date)
	require.Equal(t, day(2024, 1, 3), got[2].Date)
}

func TestNormalizeTruncatesToMidnight(t *testing.T) {
	raw := []models.HistoricalPoint{
		{Date: time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC), Close: 100},
	}
	got, err := Normalize(raw, 0, day(2024, 1, 2))
	require.NoError(t, err)
	require.Equal(t, day(2024, 1, 1), got[0].Date)
}

func TestNormalizeDropsUnusableCloses(t *testing.T) {
	raw := []models.HistoricalPoint{
		{Date: day(2024, 1, 1), Close: math.NaN()},
		{Date: day(2024, 1, 2), Close: math.Inf(1)},
		{Date: day(2024, 1, 3), Close: 0},
		{Date: day(2024, 1, 4), Close: -3.5},
		{Date: day(2024, 1, 5), Close: 101.25},
	}
	got, err := Normalize(raw, 0, day(2024, 1, 6))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 101.25, got[0].Close)
}

func TestNormalizeDedupeKeepsFirst(t *testing.T) {
	// Intraday timestamps on the same calendar day collapse to one
	// observation; the provider's own ordering decides which.
	raw := []models.HistoricalPoint{
		{Date: time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC), Close: 100},
		{Date: time.Date(2024, 1, 2, 16, 0, 0, 0, time.UTC), Close: 105},
		{Date: day(2024, 1, 3), Close: 110},
	}
	got, err := Normalize(raw, 0, day(2024, 1, 4))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 100.0, got[0].Close)
}

func TestNormalizeWindowCutoff(t *testing.T) {
	now := day(2024, 3, 1)
	raw := []models.HistoricalPoint{
		{Date: day(2023, 11, 1), Close: 90}, // older than the window
		{Date: day(2024, 2, 1), Close: 95},
		{Date: day(2024, 2, 28), Close: 99},
	}
	got, err := Normalize(raw, 60, now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, day(2024, 2, 1), got[0].Date)
}

func TestNormalizeWindowBoundaryInclusive(t *testing.T) {
	now := day(2024, 3, 1)
	raw := []models.HistoricalPoint{
		{Date: now.AddDate(0, 0, -60), Close: 90},
	}
	got, err := Normalize(raw, 60, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestNormalizeZeroWindowKeepsAll(t *testing.T) {
	raw := []models.HistoricalPoint{
		{Date: day(2010, 1, 1), Close: 10},
		{Date: day(2024, 1, 1), Close: 100},
	}
	got, err := Normalize(raw, 0, day(2024, 6, 1))
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestNormalizeEmptyIsNoData(t *testing.T) {
	_, err := Normalize(nil, 0, day(2024, 1, 1))
	require.ErrorIs(t, err, models.ErrNoData)

	_, err = Normalize([]models.HistoricalPoint{
		{Date: day(2024, 1, 1), Close: math.NaN()},
	}, 0, day(2024, 1, 2))
	require.ErrorIs(t, err, models.ErrNoData)
}
