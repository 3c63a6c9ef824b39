package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	xhttp "StockCast/pkg/http"
	"StockCast/pkg/util"
)

// Source fetches daily closes from the Alpha Vantage TIME_SERIES_DAILY
// endpoint. The free tier throttles aggressively and answers 200 with a
// "Note" payload instead of a series, so this is the variant that gets
// wrapped by the retry controller. The API key comes from configuration.
type Source struct {
	endpoint string
	apiKey   string
	client   *xhttp.Client
}

type Config struct {
	Endpoint string
	APIKey   string
}

func New(cfg Config, client *xhttp.Client) *Source {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://www.alphavantage.co/query"
	}
	return &Source{endpoint: cfg.Endpoint, apiKey: cfg.APIKey, client: client}
}

func (s *Source) Name() string { return "alphavantage" }

type dailyResponse struct {
	ErrorMessage string                       `json:"Error Message"`
	Note         string                       `json:"Note"`
	Information  string                       `json:"Information"`
	Series       map[string]map[string]string `json:"Time Series (Daily)"`
}

func (s *Source) History(ctx context.Context, ticker string) ([]models.HistoricalPoint, error) {
	sym := strings.ToUpper(strings.TrimSpace(ticker))

	var body []byte
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.endpoint,
		QueryParams: map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     sym,
			"outputsize": "compact",
			"apikey":     s.apiKey,
		},
	}, &body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	var payload dailyResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("alphavantage: decode daily series: %w", models.ErrMalformed)
	}

	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage: %s: %w", payload.ErrorMessage, models.ErrNotFound)
	}
	// Throttle replies come back 200 with a prose payload.
	if payload.Note != "" || payload.Information != "" {
		return nil, fmt.Errorf("alphavantage: throttled: %w", models.ErrRateLimited)
	}
	if payload.Series == nil {
		return nil, fmt.Errorf("alphavantage: missing daily series: %w", models.ErrMalformed)
	}
	if len(payload.Series) == 0 {
		return nil, fmt.Errorf("alphavantage: empty series for %s: %w", sym, models.ErrNotFound)
	}

	pts := make([]models.HistoricalPoint, 0, len(payload.Series))
	for date, fields := range payload.Series {
		d, ok := util.ParseDate(date)
		if !ok {
			continue
		}
		close, err := strconv.ParseFloat(fields["4. close"], 64)
		if err != nil {
			continue
		}
		pts = append(pts, models.HistoricalPoint{Date: d, Close: close})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("alphavantage: no parseable closes for %s: %w", sym, models.ErrMalformed)
	}
	return pts, nil
}

func classifyTransport(err error) error {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case 404:
			return fmt.Errorf("alphavantage: %w", models.ErrNotFound)
		case 429, 503:
			return fmt.Errorf("alphavantage: %w", models.ErrRateLimited)
		default:
			return fmt.Errorf("alphavantage: status %d: %w", se.Code, models.ErrMalformed)
		}
	}
	return fmt.Errorf("alphavantage: %w", err)
}

var _ repository.HistorySource = (*Source)(nil)
