package task

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Task names understood by the dispatcher.
const (
	GradeAnswer   = "grade_answer"
	UpdateRanking = "update_ranking"
)

// Handler processes a single queued task. Handlers must not panic the worker;
// the dispatcher recovers and logs, matching the fire-and-forget contract.
type Handler func(id uint)

type job struct {
	name string
	arg  uint
}

// Dispatcher is an in-process worker pool. Enqueue never blocks the caller:
// when the queue is full or the dispatcher is stopped the task is dropped and
// logged. A durable broker would take over this role in a multi-node setup.
type Dispatcher struct {
	queue    chan job
	handlers map[string]Handler
	workers  int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 64
	}
	return &Dispatcher{
		queue:    make(chan job, queueSize),
		handlers: make(map[string]Handler),
		workers:  workers,
	}
}

// Register binds a handler to a task name. Call before Start.
func (d *Dispatcher) Register(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = h
}

// Enqueue submits a task for asynchronous execution. No ordering guarantee
// exists between different task invocations.
func (d *Dispatcher) Enqueue(name string, id uint) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		log.Warn().Str("task", name).Uint("id", id).Msg("Dispatcher stopped, task dropped")
		return
	}
	select {
	case d.queue <- job{name: name, arg: id}:
	default:
		log.Warn().Str("task", name).Uint("id", id).Msg("Task queue full, task dropped")
	}
}

// Start launches the worker pool.
func (d *Dispatcher) Start(ctx context.Context) error {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	log.Info().Int("workers", d.workers).Int("queue_size", cap(d.queue)).Msg("Task dispatcher started")
	return nil
}

// Stop closes the queue and waits for in-flight tasks to drain.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Info().Msg("Task dispatcher stopped")
	return nil
}

func (d *Dispatcher) worker(n int) {
	defer d.wg.Done()
	for j := range d.queue {
		d.run(n, j)
	}
}

func (d *Dispatcher) run(n int, j job) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("worker", n).Str("task", j.name).Uint("id", j.arg).
				Interface("panic", r).Msg("Task handler panicked")
		}
	}()

	d.mu.RLock()
	h, ok := d.handlers[j.name]
	d.mu.RUnlock()
	if !ok {
		log.Error().Str("task", j.name).Uint("id", j.arg).Msg("No handler registered for task")
		return
	}
	h(j.arg)
}
