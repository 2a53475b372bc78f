package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/parceltrack/carrier-gateway/internal/api/metrics"
	"github.com/parceltrack/carrier-gateway/internal/core/domain"
	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

// CarrierResolver selects a carrier adapter either by explicit code or by
// tracking number shape. Implemented by carrier.Registry.
type CarrierResolver interface {
	Resolve(code string) (ports.Tracker, error)
	Detect(trackingNumber string) (ports.Tracker, error)
}

type trackingService struct {
	carriers  CarrierResolver
	cache     ports.ResultCache
	snapshots ports.SnapshotRepository
	log       zerolog.Logger
}

// NewTrackingService returns a TrackingService implementation.
func NewTrackingService(
	carriers CarrierResolver,
	cache ports.ResultCache,
	snapshots ports.SnapshotRepository,
	log zerolog.Logger,
) ports.TrackingService {
	return &trackingService{
		carriers:  carriers,
		cache:     cache,
		snapshots: snapshots,
		log:       log,
	}
}

// Track serves a tracking lookup: cache first (unless Refresh), then one
// carrier round trip. A fresh carrier result is cached and persisted as a
// snapshot; both steps are non-fatal.
func (s *trackingService) Track(ctx context.Context, in ports.TrackInput) (*ports.TrackingDetail, error) {
	tracker, err := s.resolveCarrier(in)
	if err != nil {
		return nil, err
	}
	code := tracker.Code()

	if !in.Refresh {
		cached, hit, cacheErr := s.cache.Get(ctx, code, in.TrackingNumber)
		if cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("tracking_number", in.TrackingNumber).Msg("cache lookup failed, fetching from carrier")
		} else if hit {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			return &ports.TrackingDetail{Result: *cached, FromCache: true}, nil
		}
		metrics.CacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	result, err := tracker.Track(ctx, in.TrackingNumber)
	metrics.CarrierRequestDuration.WithLabelValues(code).Observe(time.Since(start).Seconds())
	metrics.CarrierRequestsTotal.WithLabelValues(code, trackOutcome(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("track shipment: %w", err)
	}

	s.store(ctx, result)

	s.log.Info().
		Str("tracking_number", in.TrackingNumber).
		Str("carrier", code).
		Str("status", result.Status).
		Msg("shipment tracked")

	return &ports.TrackingDetail{Result: *result}, nil
}

// History returns the persisted fetch history of a shipment, newest first.
func (s *trackingService) History(ctx context.Context, in ports.HistoryInput) ([]domain.TrackingSnapshot, error) {
	snapshots, err := s.snapshots.ListByTrackingNumber(ctx, in.TrackingNumber, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("tracking history: %w", err)
	}
	return snapshots, nil
}

// Refresh force-fetches one shipment; used by the background workers.
func (s *trackingService) Refresh(ctx context.Context, in ports.RefreshInput) error {
	_, err := s.Track(ctx, ports.TrackInput{
		TrackingNumber: in.TrackingNumber,
		Carrier:        in.Carrier,
		Refresh:        true,
	})
	if err != nil {
		metrics.RefreshJobsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.RefreshJobsTotal.WithLabelValues("ok").Inc()
	return nil
}

func (s *trackingService) resolveCarrier(in ports.TrackInput) (ports.Tracker, error) {
	if in.Carrier != "" {
		return s.carriers.Resolve(in.Carrier)
	}
	return s.carriers.Detect(in.TrackingNumber)
}

// store caches and persists a fresh carrier result. Neither failure aborts
// the request; the caller already holds the result.
func (s *trackingService) store(ctx context.Context, result *domain.TrackingResult) {
	if err := s.cache.Set(ctx, result); err != nil {
		s.log.Warn().Err(err).Str("tracking_number", result.TrackingNumber).Msg("failed to cache tracking result")
	}

	snapshot := &domain.TrackingSnapshot{
		Result:    *result,
		FetchedAt: time.Now().UTC(),
	}
	if err := s.snapshots.Insert(ctx, snapshot); err != nil {
		s.log.Warn().Err(err).Str("tracking_number", result.TrackingNumber).Msg("failed to persist tracking snapshot")
	}
}

// trackOutcome maps a carrier call error to a metrics label.
func trackOutcome(err error) string {
	var ce *domain.CarrierError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrTrackingNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.As(err, &ce):
		return "carrier_error"
	default:
		return "transport_error"
	}
}
