// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tpl

import (
	"sync"

	"github.com/example/tpl-go/internal/queue"
)

// ManualScheduler implements Scheduler by queuing closures for an external
// goroutine to drain via Loop. It has no worker goroutines of its own:
// Schedule may be called from any goroutine (most commonly from a
// readiness callback firing on a different scheduler's worker, or from
// within Loop itself when a continuation reposts work), but the closures
// only ever run on whichever goroutine is currently inside Loop.
type ManualScheduler struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   queue.Queue[func()]
	running bool
	stopped bool
}

// NewManualScheduler creates a ManualScheduler ready to accept scheduled
// work. Call Loop from the goroutine that should drive it.
func NewManualScheduler() *ManualScheduler {
	s := &ManualScheduler{running: true}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Schedule enqueues fn to run on whatever goroutine is executing Loop. It
// panics with ErrSchedulerStopped if Loop has already drained the queue and
// returned following a call to Stop; use TrySchedule to get that back as an
// error instead.
func (s *ManualScheduler) Schedule(fn func()) {
	if fn == nil {
		panic("tpl: Schedule called with a nil function")
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		panic(ErrSchedulerStopped)
	}
	s.queue.PushBack(fn)
	s.mu.Unlock()
	s.cond.Signal()
}

// TrySchedule is like Schedule but reports ErrSchedulerStopped instead of
// panicking if the scheduler has already stopped.
func (s *ManualScheduler) TrySchedule(fn func()) error {
	if fn == nil {
		panic("tpl: TrySchedule called with a nil function")
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrSchedulerStopped
	}
	s.queue.PushBack(fn)
	s.mu.Unlock()
	s.cond.Signal()
	return nil
}

// Loop runs on the calling goroutine until Stop is called and the queue has
// fully drained. A Stop call with work still pending drains that work
// before Loop returns, including any further work newly-run closures
// schedule in the meantime.
func (s *ManualScheduler) Loop() {
	s.mu.Lock()
	for {
		for s.queue.Len() == 0 && s.running {
			s.cond.Wait()
		}
		if s.queue.Len() == 0 && !s.running {
			s.stopped = true
			s.mu.Unlock()
			return
		}
		fn, _ := s.queue.PopFront()
		s.mu.Unlock()

		fn()

		s.mu.Lock()
	}
}

// Stop requests that Loop return once the queue has drained. Safe to call
// from any goroutine, including from within a closure Loop is currently
// running.
func (s *ManualScheduler) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	s.cond.Broadcast()
}
