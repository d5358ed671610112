// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tpl

import "sync/atomic"

// taskImpl is the shared node behind a Task[T] handle: a Future[T] plus the
// body that eventually populates it, a scheduler to run that body on, and
// the bookkeeping needed to start exactly once. Multiple Task[T] handles
// may reference the same taskImpl; none of them owns it exclusively.
type taskImpl[T any] struct {
	future    *Future[T]
	body      func() T
	scheduler Scheduler
	name      atomic.Pointer[string]
	started   atomic.Bool
}

// newRootTaskImpl creates a taskImpl with no parents. It is not yet started;
// the caller is responsible for calling Start (directly, or via
// wireParents once dependencies exist).
func newRootTaskImpl[T any](scheduler Scheduler, body func() T) *taskImpl[T] {
	return &taskImpl[T]{
		future:    newFuture[T](),
		body:      body,
		scheduler: scheduler,
	}
}

// newStartedTaskImpl creates a taskImpl pre-marked as started, with no body
// of its own. It is used for tasks whose Future is populated some other
// way — directly for MakeTaskFromValue, or by proxying another task's
// Future for Unwrap — rather than by scheduling a body closure.
func newStartedTaskImpl[T any](scheduler Scheduler) *taskImpl[T] {
	impl := &taskImpl[T]{
		future:    newFuture[T](),
		scheduler: scheduler,
	}
	impl.started.Store(true)
	return impl
}

func (t *taskImpl[T]) Name() string {
	if p := t.name.Load(); p != nil {
		return *p
	}
	return ""
}

func (t *taskImpl[T]) SetName(name string) {
	t.name.Store(&name)
}

// Start submits the task's body to its scheduler. It panics if called more
// than once for the same taskImpl.
func (t *taskImpl[T]) Start() {
	if !t.started.CompareAndSwap(false, true) {
		panic("tpl: task already started")
	}

	body := t.body
	future := t.future
	t.scheduler.Schedule(func() {
		future.Set(body())
	})
}
