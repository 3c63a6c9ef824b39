package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	applogger "StockCast/pkg/logger"

	"github.com/cenkalti/backoff/v4"
)

// Source decorates a HistorySource with constant-delay retries for
// rate-limited fetches. Not-found and malformed responses are permanent
// and propagate on the first attempt; only the throttle signal is worth
// waiting out. The sleep blocks the one request being handled, bounded
// by its context.
type Source struct {
	src         repository.HistorySource
	maxAttempts int
	delay       time.Duration
	metrics     repository.Metrics
	logger      *applogger.Logger
}

func New(src repository.HistorySource, maxAttempts int, delay time.Duration, m repository.Metrics, l *applogger.Logger) *Source {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Source{src: src, maxAttempts: maxAttempts, delay: delay, metrics: m, logger: l}
}

func (s *Source) Name() string { return s.src.Name() }

func (s *Source) History(ctx context.Context, ticker string) ([]models.HistoricalPoint, error) {
	var pts []models.HistoricalPoint

	op := func() error {
		p, err := s.src.History(ctx, ticker)
		if err != nil {
			if errors.Is(err, models.ErrRateLimited) {
				return err
			}
			return backoff.Permanent(err)
		}
		pts = p
		return nil
	}

	notify := func(err error, next time.Duration) {
		if s.metrics != nil {
			s.metrics.RecordRetry(s.src.Name())
		}
		if s.logger != nil {
			s.logger.Warn("provider rate limited, backing off",
				applogger.String("provider", s.src.Name()),
				applogger.String("ticker", ticker),
				applogger.Duration("delay_ms", next),
				applogger.Error(err),
			)
		}
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.delay), uint64(s.maxAttempts-1)),
		ctx,
	)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		if errors.Is(err, models.ErrRateLimited) {
			return nil, fmt.Errorf("%s: rate limited after %d attempts: %w",
				s.src.Name(), s.maxAttempts, models.ErrUpstreamExhausted)
		}
		return nil, err
	}
	return pts, nil
}

var _ repository.HistorySource = (*Source)(nil)
