package models

import "time"

// HistoricalPoint is one observed daily close. Dates are pure calendar
// dates at midnight UTC; points are immutable once fetched.
type HistoricalPoint struct {
	Date  time.Time
	Close float64
}

// TrendModel is a fitted single-feature OLS line over (date ordinal, close).
// Derived solely from one request's series and never shared across requests.
type TrendModel struct {
	Slope     float64
	Intercept float64
}

// ForecastPoint is one projected close, rounded to currency precision.
type ForecastPoint struct {
	Date  time.Time
	Price float64
}

// Forecast is the result of one pipeline run.
// Note: no transport (json/http) concerns here.
type Forecast struct {
	Ticker     string
	Provider   string
	Generated  time.Time
	Prediction []ForecastPoint
}
