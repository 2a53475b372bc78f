package carrier

import (
	"context"
	"sync"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

// ShipmentTracker binds one tracking number to one carrier adapter and
// performs the network round trip at most once: the first successful
// Result is cached for the lifetime of the instance. Failures are not
// cached, so the next access retries. Construct a fresh instance to track
// a different number or to force a re-fetch.
//
// The check-and-set is mutex guarded, so a single instance is safe for
// concurrent use.
type ShipmentTracker struct {
	tracker        ports.Tracker
	trackingNumber string

	mu     sync.Mutex
	result *domain.TrackingResult
}

// NewShipmentTracker creates a lazy tracker for trackingNumber.
func NewShipmentTracker(tracker ports.Tracker, trackingNumber string) *ShipmentTracker {
	return &ShipmentTracker{tracker: tracker, trackingNumber: trackingNumber}
}

// TrackingNumber returns the number this instance is bound to.
func (t *ShipmentTracker) TrackingNumber() string {
	return t.trackingNumber
}

// Result returns the tracking result, fetching it from the carrier on
// first access and the memoized value afterwards.
func (t *ShipmentTracker) Result(ctx context.Context) (*domain.TrackingResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.result != nil {
		return t.result, nil
	}

	result, err := t.tracker.Track(ctx, t.trackingNumber)
	if err != nil {
		return nil, err
	}

	t.result = result
	return result, nil
}
