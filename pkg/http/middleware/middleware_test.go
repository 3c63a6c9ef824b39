package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	applogger "StockCast/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// fileLogger returns a logger writing JSON lines to a temp file and a
// reader for what it wrote so far.
func fileLogger(t *testing.T) (*applogger.Logger, func() string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := applogger.New(&applogger.Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	return l, func() string {
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(b)
	}
}

func TestRequestLoggingWritesThroughLogger(t *testing.T) {
	l, read := fileLogger(t)

	e := echo.New()
	e.Use(RequestLogging(l))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusTeapot, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	out := read()
	require.Contains(t, out, "http request")
	require.Contains(t, out, `"method":"GET"`)
	require.Contains(t, out, `"status":418`)
}

func TestRequestLoggingNilLoggerIsNoop(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogging(nil))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsLogsServerErrors(t *testing.T) {
	l, read := fileLogger(t)

	h := Metrics(l, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/predict-stock", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	out := read()
	require.Contains(t, out, "http request failed")
	require.Contains(t, out, `"status":"502"`)
}

func TestMetricsLogsSlowRequests(t *testing.T) {
	l, read := fileLogger(t)

	h := Metrics(l, time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/predict-stock", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, read(), "http request slow")
}

func TestRecoverLogsPanicAndAnswers500(t *testing.T) {
	l, read := fileLogger(t)

	e := echo.New()
	e.Use(Recover(l))
	e.GET("/boom", func(c echo.Context) error {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internal server error")

	out := read()
	require.Contains(t, out, "panic recovered")
	require.Contains(t, out, "kaboom")
}
