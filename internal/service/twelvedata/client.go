package twelvedata

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

// Source fetches daily closes from the Twelve Data time_series endpoint.
// It is the exchange variant: the upstream pre-filters to OutputSize
// trading days and the ticker is passed through as given.
type Source struct {
	endpoint   string
	apiKey     string
	outputSize int
	client     *xhttp.Client
}

type Config struct {
	Endpoint   string
	APIKey     string
	OutputSize int
}

func New(cfg Config, client *xhttp.Client) *Source {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.twelvedata.com"
	}
	if cfg.OutputSize <= 0 {
		cfg.OutputSize = 60
	}
	return &Source{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		outputSize: cfg.OutputSize,
		client:     client,
	}
}

func (s *Source) Name() string { return "twelvedata" }

type timeSeriesResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Values  []struct {
		Datetime string `json:"datetime"`
		Close    string `json:"close"`
	} `json:"values"`
}

func (s *Source) History(ctx context.Context, ticker string) ([]models.HistoricalPoint, error) {
	sym := strings.TrimSpace(ticker)

	var body []byte
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.endpoint + "/time_series",
		QueryParams: map[string]string{
			"symbol":     sym,
			"interval":   "1day",
			"outputsize": strconv.Itoa(s.outputSize),
			"apikey":     s.apiKey,
		},
	}, &body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	var payload timeSeriesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("twelvedata: decode time_series: %w", models.ErrMalformed)
	}

	if payload.Status == "error" {
		switch payload.Code {
		case 404:
			return nil, fmt.Errorf("twelvedata: %s: %w", payload.Message, models.ErrNotFound)
		case 429:
			return nil, fmt.Errorf("twelvedata: %s: %w", payload.Message, models.ErrRateLimited)
		default:
			return nil, fmt.Errorf("twelvedata: api error %d %s: %w", payload.Code, payload.Message, models.ErrMalformed)
		}
	}
	if len(payload.Values) == 0 {
		return nil, fmt.Errorf("twelvedata: no values for %s: %w", sym, models.ErrNotFound)
	}

	pts := make([]models.HistoricalPoint, 0, len(payload.Values))
	for _, v := range payload.Values {
		d, ok := util.ParseDate(v.Datetime)
		if !ok {
			continue
		}
		close, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			continue
		}
		pts = append(pts, models.HistoricalPoint{Date: d, Close: close})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("twelvedata: no parseable values for %s: %w", sym, models.ErrMalformed)
	}
	return pts, nil
}

func classifyTransport(err error) error {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case 404:
			return fmt.Errorf("twelvedata: %w", models.ErrNotFound)
		case 429:
			return fmt.Errorf("twelvedata: %w", models.ErrRateLimited)
		default:
			return fmt.Errorf("twelvedata: status %d: %w", se.Code, models.ErrMalformed)
		}
	}
	return fmt.Errorf("twelvedata: %w", err)
}

var _ repository.HistorySource = (*Source)(nil)
