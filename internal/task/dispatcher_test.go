package task_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/task"
)

func TestDispatcherRunsRegisteredHandler(t *testing.T) {
	d := task.NewDispatcher(2, 16)

	done := make(chan uint, 1)
	d.Register("echo", func(id uint) {
		done <- id
	})
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer d.Stop(context.Background())

	d.Enqueue("echo", 42)

	select {
	case got := <-done:
		if got != 42 {
			t.Fatalf("expected 42, got %d", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestDispatcherRecoversFromPanic(t *testing.T) {
	d := task.NewDispatcher(1, 16)

	var mu sync.Mutex
	var calls []string
	d.Register("boom", func(id uint) {
		mu.Lock()
		calls = append(calls, "boom")
		mu.Unlock()
		panic("handler exploded")
	})
	d.Register("after", func(id uint) {
		mu.Lock()
		calls = append(calls, "after")
		mu.Unlock()
	})
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	d.Enqueue("boom", 1)
	d.Enqueue("after", 2)

	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 || calls[1] != "after" {
		t.Fatalf("expected worker to survive the panic and run the next task, got %v", calls)
	}
}

func TestDispatcherDrainsQueueOnStop(t *testing.T) {
	d := task.NewDispatcher(1, 16)

	var mu sync.Mutex
	count := 0
	d.Register("count", func(id uint) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		d.Enqueue("count", uint(i))
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if count != 5 {
		t.Fatalf("expected all 5 queued tasks to run before stop returned, got %d", count)
	}
}

func TestEnqueueAfterStopIsDropped(t *testing.T) {
	d := task.NewDispatcher(1, 16)
	d.Register("noop", func(id uint) {})
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	// Must not panic on the closed queue.
	d.Enqueue("noop", 1)
}

func TestUnknownTaskNameIsLoggedNotFatal(t *testing.T) {
	d := task.NewDispatcher(1, 16)
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	d.Enqueue("never-registered", 7)
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}
