package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

const collectionSnapshots = "tracking_snapshots"

const defaultListLimit = 20

// SnapshotRepository persists fetched tracking results.
type SnapshotRepository struct {
	col *mongo.Collection
}

func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{col: db.Collection(collectionSnapshots)}
}

// Insert stores one fetched result.
func (r *SnapshotRepository) Insert(ctx context.Context, s *domain.TrackingSnapshot) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	return err
}

// ListByTrackingNumber returns up to limit snapshots for the number,
// newest first.
func (r *SnapshotRepository) ListByTrackingNumber(ctx context.Context, trackingNumber string, limit int) ([]domain.TrackingSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "fetched_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"result.tracking_number": trackingNumber}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []domain.TrackingSnapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// EnsureIndexes creates the indexes the snapshot queries rely on.
func (r *SnapshotRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "result.tracking_number", Value: 1}, {Key: "fetched_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
