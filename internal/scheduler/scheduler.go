// Package scheduler holds the process-wide queue of deferred reminder
// jobs. Jobs outlive the request that enqueued them: the booking flow
// returns immediately and a single background worker fires each job at
// or after its fire time.
package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reminder is the denormalized payload enqueued at booking time. The raw
// ids are kept so the handler can re-fetch fresh rows at fire time instead
// of trusting the stale snapshot.
type Reminder struct {
	BookingID   uuid.UUID
	CustomerID  uuid.UUID
	ProviderID  uuid.UUID
	ServiceID   uuid.UUID
	BookingDate time.Time
}

// Handler executes a due job. Failures are the handler's to log; the
// scheduler never retries.
type Handler func(ctx context.Context, reminder Reminder)

type job struct {
	key    string
	fireAt time.Time
	data   Reminder
	index  int // heap index, -1 once removed
}

type jobHeap []*job

func (h jobHeap) Len() int            { return len(h) }
func (h jobHeap) Less(i, j int) bool  { return h[i].fireAt.Before(h[j].fireAt) }
func (h jobHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *jobHeap) Push(x any)         { j := x.(*job); j.index = len(*h); *h = append(*h, j) }
func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	j := old[n-1]
	old[n-1] = nil
	j.index = -1
	*h = old[:n-1]
	return j
}

// Scheduler is an explicit service instance with injected dependencies.
// Start/Stop bound its lifetime to the process; there are no mid-run
// restart semantics.
type Scheduler struct {
	handler Handler
	loc     *time.Location
	log     *zap.Logger

	mu     sync.Mutex
	queue  jobHeap
	byKey  map[string]*job
	wake   chan struct{}
	stop   chan struct{}
	done   chan struct{}
	closed bool
}

func New(handler Handler, loc *time.Location, log *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		handler: handler,
		loc:     loc,
		log:     log.With(zap.String("component", "scheduler")),
		byKey:   make(map[string]*job),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the background worker. Call once at process startup.
func (s *Scheduler) Start() {
	go s.run()
	s.log.Info("Scheduler started", zap.String("timezone", s.loc.String()))
}

// Stop shuts the worker down and waits for it to exit. Pending jobs are
// dropped; there is no persistence across restarts.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	<-s.done
	s.log.Info("Scheduler stopped")
}

// Enqueue registers a job keyed by key to fire at or after fireAt. It
// never blocks on job execution. Enqueueing an existing key supersedes
// the previous job, so a rescheduled booking keeps a single reminder.
func (s *Scheduler) Enqueue(key string, fireAt time.Time, data Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if old, ok := s.byKey[key]; ok && old.index >= 0 {
		heap.Remove(&s.queue, old.index)
	}

	j := &job{key: key, fireAt: fireAt, data: data}
	heap.Push(&s.queue, j)
	s.byKey[key] = j

	s.log.Info("Reminder scheduled",
		zap.String("key", key),
		zap.Time("fire_at", fireAt.In(s.loc)),
	)

	s.poke()
}

// Cancel drops the pending job for key, if any. Returns whether a job
// was removed.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.byKey[key]
	if !ok || j.index < 0 {
		return false
	}

	heap.Remove(&s.queue, j.index)
	delete(s.byKey, key)

	s.log.Info("Reminder cancelled", zap.String("key", key))

	s.poke()
	return true
}

// Pending reports the number of jobs waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

func (s *Scheduler) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run() {
	defer close(s.done)

	for {
		s.mu.Lock()
		var next *job
		if s.queue.Len() > 0 {
			next = s.queue[0]
		}
		s.mu.Unlock()

		if next == nil {
			select {
			case <-s.stop:
				return
			case <-s.wake:
			}
			continue
		}

		delay := time.Until(next.fireAt)
		if delay <= 0 {
			s.fire(next)
			continue
		}

		timer := time.NewTimer(delay)
		select {
		case <-s.stop:
			timer.Stop()
			return
		case <-s.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// fire pops the job if it is still the one at the head of the queue and
// executes it in the worker goroutine. Sequential execution is fine: jobs
// are rare and the handler bounds its own I/O with a context deadline.
func (s *Scheduler) fire(j *job) {
	s.mu.Lock()
	if j.index < 0 {
		// Cancelled or superseded between peek and fire.
		s.mu.Unlock()
		return
	}
	heap.Remove(&s.queue, j.index)
	if s.byKey[j.key] == j {
		delete(s.byKey, j.key)
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.log.Info("Firing reminder",
		zap.String("key", j.key),
		zap.Time("fire_at", j.fireAt.In(s.loc)),
	)

	s.handler(ctx, j.data)
}
