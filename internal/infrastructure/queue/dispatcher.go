package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes refresh jobs to a fixed set of workers using consistent
// hashing on the tracking number, so concurrent refreshes of the same
// shipment are serialised onto one worker.
type Dispatcher struct {
	workers []chan ports.RefreshInput
	service ports.TrackingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.TrackingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RefreshInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RefreshInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a refresh job to the worker responsible for its tracking
// number. The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.RefreshInput) {
	d.workers[d.shardIndex(job.TrackingNumber)] <- job
}

// EnqueueBatch enqueues multiple jobs preserving per-shipment ordering.
func (d *Dispatcher) EnqueueBatch(jobs []ports.RefreshInput) {
	for _, j := range jobs {
		d.Enqueue(j)
	}
}

// shardIndex maps a tracking number deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingNumber))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RefreshInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Refresh(ctx, job); err != nil {
				d.log.Error().Err(err).
					Str("tracking_number", job.TrackingNumber).
					Int("worker_id", id).
					Msg("tracking refresh failed")
			}
		}
	}
}
