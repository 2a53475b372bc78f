package ports

import (
	"context"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// TrackInput carries the parameters for a single tracking lookup.
type TrackInput struct {
	TrackingNumber string
	// Carrier is an explicit carrier code. When empty the carrier is
	// detected from the tracking number shape.
	Carrier string
	// Refresh bypasses the result cache and forces a carrier round trip.
	Refresh bool
}

// TrackingDetail is the service-level view returned by Track.
type TrackingDetail struct {
	Result domain.TrackingResult
	// FromCache is true when the result was served from the cache rather
	// than a live carrier call.
	FromCache bool
}

// HistoryInput carries the parameters for the snapshot history lookup.
type HistoryInput struct {
	TrackingNumber string
	Limit          int
}

// RefreshInput identifies a shipment to re-fetch in the background.
type RefreshInput struct {
	TrackingNumber string
	Carrier        string
}

// TrackingService defines the gateway's use-case operations.
type TrackingService interface {
	Track(ctx context.Context, input TrackInput) (*TrackingDetail, error)
	History(ctx context.Context, input HistoryInput) ([]domain.TrackingSnapshot, error)
	// Refresh force-fetches and persists a shipment; invoked by the
	// background refresh workers.
	Refresh(ctx context.Context, input RefreshInput) error
}
