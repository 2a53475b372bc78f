package ports

import (
	"context"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// SnapshotRepository defines persistence operations for fetched results.
type SnapshotRepository interface {
	Insert(ctx context.Context, s *domain.TrackingSnapshot) error
	// ListByTrackingNumber returns up to limit snapshots for the number,
	// newest first.
	ListByTrackingNumber(ctx context.Context, trackingNumber string, limit int) ([]domain.TrackingSnapshot, error)
}
