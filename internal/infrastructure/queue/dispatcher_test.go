package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type recordingService struct {
	mu   sync.Mutex
	jobs []ports.RefreshInput
	done chan struct{}
	want int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) Track(context.Context, ports.TrackInput) (*ports.TrackingDetail, error) {
	return nil, nil
}

func (s *recordingService) History(context.Context, ports.HistoryInput) ([]domain.TrackingSnapshot, error) {
	return nil, nil
}

func (s *recordingService) Refresh(_ context.Context, in ports.RefreshInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, in)
	if len(s.jobs) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingService) wait(t *testing.T) []ports.RefreshInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for refresh jobs")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.RefreshInput(nil), s.jobs...)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestDispatcher_EnqueueRunsRefresh(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newRecordingService(1)
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.RefreshInput{TrackingNumber: "1Z999", Carrier: "ups"})

	jobs := svc.wait(t)
	if jobs[0].TrackingNumber != "1Z999" || jobs[0].Carrier != "ups" {
		t.Fatalf("job = %+v", jobs[0])
	}
}

func TestDispatcher_EnqueueBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newRecordingService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	d.EnqueueBatch([]ports.RefreshInput{
		{TrackingNumber: "1Z111"},
		{TrackingNumber: "1Z222"},
		{TrackingNumber: "1Z333"},
	})

	jobs := svc.wait(t)
	seen := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		seen[j.TrackingNumber] = true
	}
	for _, n := range []string{"1Z111", "1Z222", "1Z333"} {
		if !seen[n] {
			t.Fatalf("job %s never processed", n)
		}
	}
}

func TestDispatcher_ShardingIsStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("1Z999AA10123456784")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("1Z999AA10123456784"); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
