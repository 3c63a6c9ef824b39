package ratelimit

import (
	"context"
	"fmt"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
)

// Gate decorates a HistorySource with a local token bucket so a burst of
// forecast requests spends retry delay here instead of burning the
// provider's quota. A drained bucket surfaces as the same rate-limit
// signal an upstream throttle would.
type Gate struct {
	src          repository.HistorySource
	limiter      *Limiter
	capacity     float64
	refillPerSec float64
}

func NewGate(src repository.HistorySource, capacity, refillPerSec float64) *Gate {
	return &Gate{
		src:          src,
		limiter:      New(),
		capacity:     capacity,
		refillPerSec: refillPerSec,
	}
}

func (g *Gate) Name() string { return g.src.Name() }

func (g *Gate) History(ctx context.Context, ticker string) ([]models.HistoricalPoint, error) {
	if !g.limiter.Allow(g.src.Name(), g.capacity, g.refillPerSec) {
		return nil, fmt.Errorf("%s: local quota drained: %w", g.src.Name(), models.ErrRateLimited)
	}
	return g.src.History(ctx, ticker)
}

var _ repository.HistorySource = (*Gate)(nil)
