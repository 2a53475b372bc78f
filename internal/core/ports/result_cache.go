package ports

import (
	"context"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// ResultCache is a short-lived cache of carrier results keyed by
// carrier code and tracking number.
type ResultCache interface {
	// Get returns the cached result and true on a hit.
	Get(ctx context.Context, carrier, trackingNumber string) (*domain.TrackingResult, bool, error)
	Set(ctx context.Context, result *domain.TrackingResult) error
}
