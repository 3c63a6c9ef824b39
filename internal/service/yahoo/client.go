package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	xhttp "StockCast/pkg/http"
)

// Source fetches daily closes from the Yahoo Finance chart API. It is the
// bulk-history variant: one call returns up to Range of history and the
// normalizer applies any trailing window afterwards.
type Source struct {
	endpoint string
	rng      string
	client   *xhttp.Client
}

type Config struct {
	Endpoint string
	Range    string
}

func New(cfg Config, client *xhttp.Client) *Source {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	if cfg.Range == "" {
		cfg.Range = "1y"
	}
	return &Source{endpoint: strings.TrimRight(cfg.Endpoint, "/"), rng: cfg.Range, client: client}
}

func (s *Source) Name() string { return "yahoo" }

// chartResponse is the subset of the Yahoo chart payload we consume.
// Closes are pointers because Yahoo emits null for sessions without data.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (s *Source) History(ctx context.Context, ticker string) ([]models.HistoricalPoint, error) {
	sym := strings.ToUpper(strings.TrimSpace(ticker))

	var body []byte
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", s.endpoint, url.PathEscape(sym)),
		QueryParams: map[string]string{
			"range":    s.rng,
			"interval": "1d",
		},
	}, &body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	var payload chartResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("yahoo: decode chart: %w", models.ErrMalformed)
	}

	if e := payload.Chart.Error; e != nil {
		if strings.EqualFold(e.Code, "Not Found") {
			return nil, fmt.Errorf("yahoo: %s: %w", e.Description, models.ErrNotFound)
		}
		return nil, fmt.Errorf("yahoo: chart error %s: %w", e.Code, models.ErrMalformed)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty result for %s: %w", sym, models.ErrNotFound)
	}

	res := payload.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: missing quote block: %w", models.ErrMalformed)
	}
	closes := res.Indicators.Quote[0].Close

	pts := make([]models.HistoricalPoint, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		pts = append(pts, models.HistoricalPoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("yahoo: no closes for %s: %w", sym, models.ErrNotFound)
	}
	return pts, nil
}

func classifyTransport(err error) error {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case 404:
			return fmt.Errorf("yahoo: %w", models.ErrNotFound)
		case 429:
			return fmt.Errorf("yahoo: %w", models.ErrRateLimited)
		default:
			return fmt.Errorf("yahoo: status %d: %w", se.Code, models.ErrMalformed)
		}
	}
	return fmt.Errorf("yahoo: %w", err)
}

var _ repository.HistorySource = (*Source)(nil)
