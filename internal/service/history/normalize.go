package history

import (
	"math"
	"sort"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/pkg/util"
)

// Normalize turns a raw provider series into the canonical one the model
// is fit on: usable closes only, pure calendar dates, strictly ascending,
// no duplicate dates, optionally restricted to a trailing window.
//
// Duplicate dates keep the first occurrence after the (stable) sort, so
// for equal dates the provider's own ordering decides. windowDays <= 0
// keeps everything, for providers that already pre-filter their range.
func Normalize(points []models.HistoricalPoint, windowDays int, now time.Time) ([]models.HistoricalPoint, error) {
	cleaned := make([]models.HistoricalPoint, 0, len(points))
	for _, p := range points {
		// NaN, Inf and non-positive closes are all provider stand-ins
		// for a missing observation.
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) || p.Close <= 0 {
			continue
		}
		cleaned = append(cleaned, models.HistoricalPoint{
			Date:  util.Midnight(p.Date),
			Close: p.Close,
		})
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].Date.Before(cleaned[j].Date)
	})

	var cutoff time.Time
	if windowDays > 0 {
		cutoff = util.Midnight(now).AddDate(0, 0, -windowDays)
	}

	out := cleaned[:0]
	var prev time.Time
	for _, p := range cleaned {
		if len(out) > 0 && p.Date.Equal(prev) {
			continue
		}
		if windowDays > 0 && p.Date.Before(cutoff) {
			continue
		}
		out = append(out, p)
		prev = p.Date
	}

	if len(out) == 0 {
		return nil, models.ErrNoData
	}
	return out, nil
}
