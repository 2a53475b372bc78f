package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubService struct {
	trackErr   error
	lastInput  ports.TrackInput
	history    []domain.TrackingSnapshot
	historyErr error
}

func (s *stubService) Track(_ context.Context, in ports.TrackInput) (*ports.TrackingDetail, error) {
	s.lastInput = in
	if s.trackErr != nil {
		return nil, s.trackErr
	}
	delivered := time.Date(2008, time.December, 8, 10, 43, 37, 0, time.Local)
	return &ports.TrackingDetail{
		Result: domain.TrackingResult{
			TrackingNumber: in.TrackingNumber,
			Carrier:        domain.CarrierUPS,
			ServiceType:    "EXPRESS SAVER",
			Status:         "DELIVERED",
			SignatureName:  "J DOE",
			DeliveryAt:     &delivered,
			Events: []domain.TrackingEvent{
				{Description: "DELIVERED", StatusCode: "D", OccurredAt: &delivered},
			},
		},
	}, nil
}

func (s *stubService) History(_ context.Context, _ ports.HistoryInput) ([]domain.TrackingSnapshot, error) {
	return s.history, s.historyErr
}

func (s *stubService) Refresh(_ context.Context, _ ports.RefreshInput) error {
	return nil
}

type stubDispatcher struct {
	jobs []ports.RefreshInput
}

func (d *stubDispatcher) Enqueue(job ports.RefreshInput) {
	d.jobs = append(d.jobs, job)
}

func (d *stubDispatcher) EnqueueBatch(jobs []ports.RefreshInput) {
	d.jobs = append(d.jobs, jobs...)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestTrackingGet(t *testing.T) {
	svc := &stubService{}
	h := NewTrackingHandler(svc, &stubDispatcher{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/tracking/1Z999?refresh=true&carrier=ups", "")
	c.SetParamNames("tracking_number")
	c.SetParamValues("1Z999")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if svc.lastInput.TrackingNumber != "1Z999" || !svc.lastInput.Refresh || svc.lastInput.Carrier != "ups" {
		t.Fatalf("service input = %+v", svc.lastInput)
	}

	var resp trackingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ServiceType != "EXPRESS SAVER" || resp.SignatureName != "J DOE" {
		t.Fatalf("response = %+v", resp)
	}
	if len(resp.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(resp.Events))
	}
}

func TestTrackingGet_ErrorPassesThrough(t *testing.T) {
	svc := &stubService{trackErr: domain.ErrTrackingNotFound}
	h := NewTrackingHandler(svc, &stubDispatcher{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/tracking/1Z999", "")
	c.SetParamNames("tracking_number")
	c.SetParamValues("1Z999")

	// Mapping to HTTP codes is the error handler's job; the handler
	// surfaces the domain error untouched.
	if err := h.Get(c); err != domain.ErrTrackingNotFound {
		t.Fatalf("expected ErrTrackingNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

func TestTrackingHistory(t *testing.T) {
	svc := &stubService{history: []domain.TrackingSnapshot{
		{FetchedAt: time.Now().UTC(), Result: domain.TrackingResult{ServiceType: "GROUND", Status: "IN TRANSIT"}},
	}}
	h := NewTrackingHandler(svc, &stubDispatcher{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/tracking/1Z999/history?limit=5", "")
	c.SetParamNames("tracking_number")
	c.SetParamValues("1Z999")

	if err := h.History(c); err != nil {
		t.Fatalf("History: %v", err)
	}

	var resp historyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TrackingNumber != "1Z999" || len(resp.Items) != 1 {
		t.Fatalf("response = %+v", resp)
	}
	if resp.Items[0].Status != "IN TRANSIT" {
		t.Fatalf("item = %+v", resp.Items[0])
	}
}

// ---------------------------------------------------------------------------
// Refresh
// ---------------------------------------------------------------------------

func TestTrackingRefresh(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewTrackingHandler(&stubService{}, dispatcher)

	body := `{"tracking_numbers": ["1Z111", "1Z222"], "carrier": "ups"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/tracking/refresh", body)

	if err := h.Refresh(c); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}

	if len(dispatcher.jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(dispatcher.jobs))
	}
	if dispatcher.jobs[0].TrackingNumber != "1Z111" || dispatcher.jobs[0].Carrier != "ups" {
		t.Fatalf("job = %+v", dispatcher.jobs[0])
	}
}

func TestTrackingRefresh_EmptyBatchRejected(t *testing.T) {
	h := NewTrackingHandler(&stubService{}, &stubDispatcher{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/tracking/refresh", `{"tracking_numbers": []}`)

	err := h.Refresh(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestTrackingRefresh_UnknownCarrierRejected(t *testing.T) {
	h := NewTrackingHandler(&stubService{}, &stubDispatcher{})

	body := `{"tracking_numbers": ["1Z111"], "carrier": "fedex"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/tracking/refresh", body)

	err := h.Refresh(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
