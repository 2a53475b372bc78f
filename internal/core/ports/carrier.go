package ports

import (
	"context"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// Tracker is implemented by carrier adapters. Track performs one network
// round trip for the given tracking number and maps the carrier response
// into a TrackingResult, or fails. Implementations do not retry.
type Tracker interface {
	// Code returns the carrier code the adapter serves (e.g. "ups").
	Code() string
	Track(ctx context.Context, trackingNumber string) (*domain.TrackingResult, error)
}
