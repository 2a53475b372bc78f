// Package carrier holds the carrier-neutral pieces of the adapter layer:
// the registry that routes requests to a concrete adapter and the
// memoizing single-shipment tracker.
package carrier

import (
	"fmt"
	"strings"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

// Registry maps carrier codes to their adapters and detects the carrier
// from the tracking number shape when the caller does not name one.
type Registry struct {
	trackers map[string]ports.Tracker
}

// NewRegistry creates a Registry over the given adapters, keyed by their
// carrier codes.
func NewRegistry(trackers ...ports.Tracker) *Registry {
	r := &Registry{trackers: make(map[string]ports.Tracker, len(trackers))}
	for _, t := range trackers {
		r.trackers[t.Code()] = t
	}
	return r
}

// Resolve returns the adapter for code.
func (r *Registry) Resolve(code string) (ports.Tracker, error) {
	t, ok := r.trackers[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCarrier, code)
	}
	return t, nil
}

// Detect infers the carrier from the tracking number and returns its
// adapter. UPS numbers start with "1Z".
func (r *Registry) Detect(trackingNumber string) (ports.Tracker, error) {
	upper := strings.ToUpper(strings.TrimSpace(trackingNumber))

	switch {
	case strings.HasPrefix(upper, "1Z"):
		return r.Resolve(domain.CarrierUPS)
	default:
		return nil, fmt.Errorf("%w: cannot detect carrier for %q", domain.ErrUnknownCarrier, trackingNumber)
	}
}
