package carrier

import (
	"context"
	"errors"
	"testing"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubTracker struct {
	code   string
	calls  int
	err    error
	result *domain.TrackingResult
}

func (s *stubTracker) Code() string { return s.code }

func (s *stubTracker) Track(_ context.Context, trackingNumber string) (*domain.TrackingResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &domain.TrackingResult{
		TrackingNumber: trackingNumber,
		Carrier:        s.code,
		ServiceType:    "GROUND",
	}, nil
}

// ---------------------------------------------------------------------------
// ShipmentTracker
// ---------------------------------------------------------------------------

func TestShipmentTracker_MemoizesSuccess(t *testing.T) {
	stub := &stubTracker{code: domain.CarrierUPS}
	tracker := NewShipmentTracker(stub, "1Z999")

	first, err := tracker.Result(context.Background())
	if err != nil {
		t.Fatalf("first Result: %v", err)
	}
	second, err := tracker.Result(context.Background())
	if err != nil {
		t.Fatalf("second Result: %v", err)
	}

	if stub.calls != 1 {
		t.Fatalf("expected exactly one carrier call, got %d", stub.calls)
	}
	if first != second {
		t.Fatalf("expected the memoized value on second access")
	}
}

func TestShipmentTracker_DoesNotMemoizeFailure(t *testing.T) {
	stub := &stubTracker{code: domain.CarrierUPS, err: errors.New("boom")}
	tracker := NewShipmentTracker(stub, "1Z999")

	if _, err := tracker.Result(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	// Next access retries after the failure clears.
	stub.err = nil
	result, err := tracker.Result(context.Background())
	if err != nil {
		t.Fatalf("Result after recovery: %v", err)
	}
	if result.TrackingNumber != "1Z999" {
		t.Fatalf("tracking number = %q", result.TrackingNumber)
	}
	if stub.calls != 2 {
		t.Fatalf("expected 2 carrier calls, got %d", stub.calls)
	}
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry(&stubTracker{code: domain.CarrierUPS})

	if _, err := reg.Resolve("ups"); err != nil {
		t.Fatalf("Resolve(ups): %v", err)
	}
	if _, err := reg.Resolve("UPS"); err != nil {
		t.Fatalf("Resolve is case-insensitive: %v", err)
	}

	_, err := reg.Resolve("fedex")
	if !errors.Is(err, domain.ErrUnknownCarrier) {
		t.Fatalf("expected ErrUnknownCarrier, got %v", err)
	}
}

func TestRegistry_Detect(t *testing.T) {
	reg := NewRegistry(&stubTracker{code: domain.CarrierUPS})

	tracker, err := reg.Detect(" 1z12345e0291980793 ")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if tracker.Code() != domain.CarrierUPS {
		t.Fatalf("detected carrier = %q", tracker.Code())
	}

	_, err = reg.Detect("9400100000000000000000")
	if !errors.Is(err, domain.ErrUnknownCarrier) {
		t.Fatalf("expected ErrUnknownCarrier, got %v", err)
	}
}
