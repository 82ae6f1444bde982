package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

// recordingAlertService collects processed alerts and signals on each one.
type recordingAlertService struct {
	mu     sync.Mutex
	alerts []ports.StockAlertInput
	done   chan struct{}
}

func (s *recordingAlertService) Process(_ context.Context, alert ports.StockAlertInput) error {
	s.mu.Lock()
	s.alerts = append(s.alerts, alert)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func TestDispatcherProcessesEnqueuedAlerts(t *testing.T) {
	svc := &recordingAlertService{done: make(chan struct{}, 16)}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.StockAlertInput{ProductID: "prod-1", SKU: "A", Stock: 3})
	d.Enqueue(ports.StockAlertInput{ProductID: "prod-2", SKU: "B", Stock: 1})

	for i := 0; i < 2; i++ {
		select {
		case <-svc.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for alert %d", i+1)
		}
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.alerts) != 2 {
		t.Fatalf("processed = %d, want 2", len(svc.alerts))
	}
}

func TestDispatcherShardingIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	first := d.shardIndex("prod-1")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("prod-1"); got != first {
			t.Fatalf("shardIndex not stable: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shardIndex = %d, out of range", first)
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
