package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	models "TradeGate/internal/domain/models"
	internalrepo "TradeGate/internal/repository"
	"TradeGate/internal/usecase"
	"TradeGate/pkg/cache"
	xlogger "TradeGate/pkg/logger"

	"github.com/labstack/echo/v4"
)

type noopMetrics struct{}

func (noopMetrics) RecordForecastRequest(string)   {}
func (noopMetrics) RecordFetchError()              {}
func (noopMetrics) RecordTimestampFallback(string) {}
func (noopMetrics) RecordStateWrite(string)        {}
func (noopMetrics) RecordLatency(string, float64)  {}

type fakeSource struct {
	events []models.CalendarEvent
	err    error
}

func (s *fakeSource) FetchWindow(_ context.Context, _, _ time.Time) ([]models.CalendarEvent, error) {
	return s.events, s.err
}

func newTestHandler(t *testing.T, src *fakeSource, secret string) (*GateEchoHandler, *echo.Echo) {
	t.Helper()
	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	planner := usecase.NewPlanner(src, noopMetrics{})
	store := internalrepo.NewKVStateStore(cache.NewMemoryCache())
	state := usecase.NewMarketStateService(store, secret, noopMetrics{})
	h := NewGateEchoHandler(logger, planner, state, models.RoutineWindow{StartGMT: "07:00", EndGMT: "10:00"})

	e := echo.New()
	h.RegisterRoutes(e)
	return h, e
}

func TestForecastEndpoint(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{}, "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/forecast", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if cc := rec.Header().Get(echo.HeaderCacheControl); !strings.Contains(cc, "max-age=300") {
		t.Fatalf("missing cache-control hint: %q", cc)
	}

	var body models.ForecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK {
		t.Fatalf("expected ok:true")
	}
	if len(body.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(body.Days))
	}
	if body.Routine.StartGMT != "07:00" || body.Routine.EndGMT != "10:00" {
		t.Fatalf("unexpected routine window: %+v", body.Routine)
	}
	if len(body.Disclaimer) == 0 {
		t.Fatalf("expected disclaimer")
	}
}

func TestForecastEndpointFetchFailure(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{err: errors.New("feed down")}, "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/forecast", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ok, _ := body["ok"].(bool); ok {
		t.Fatalf("expected ok:false")
	}
	if body["error"] == "" {
		t.Fatalf("expected error message")
	}
}

func TestMarketStateReadNeverWritten(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{}, "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/market-state", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body models.StateReadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK || body.Value != nil {
		t.Fatalf("expected ok with null value: %+v", body)
	}
}

func TestMarketStateWriteAndReadBack(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{}, "s3cret")

	payload := `{"secret":"s3cret","state":"TREND","volatility":"HIGH","score":0.9,"note":"nyc session"}`
	req := httptest.NewRequest(http.MethodPost, "/api/market-state", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var wrote models.StateWriteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &wrote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !wrote.OK || wrote.Saved == 0 {
		t.Fatalf("unexpected write response: %+v", wrote)
	}
	if wrote.Payload.State != "TREND" || wrote.Payload.Volatility != "HIGH" {
		t.Fatalf("unexpected payload: %+v", wrote.Payload)
	}

	// Read it back.
	req = httptest.NewRequest(http.MethodGet, "/api/market-state", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var read models.StateReadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &read); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if read.Value == nil || read.Value.State != "TREND" {
		t.Fatalf("read back mismatch: %+v", read.Value)
	}
}

func TestMarketStateWriteBadSecret(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{}, "s3cret")

	payload := `{"secret":"nope","state":"RANGE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/market-state", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMarketStateWriteMalformedBody(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{}, "s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/market-state", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMarketStateWriteMissingServerSecret(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{}, "")

	payload := `{"secret":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/api/market-state", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMarketStateWrongMethod(t *testing.T) {
	_, e := newTestHandler(t, &fakeSource{}, "s3cret")

	req := httptest.NewRequest(http.MethodPut, "/api/market-state", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}
