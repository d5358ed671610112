// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tpl

// Task[T] is a handle onto a node in the task dependency graph: a body that
// produces a T, the scheduler it runs on, and the Future[T] it publishes
// its result into. Task values are cheap to copy — they hold a pointer to
// shared state — and a zero Task[T] is invalid; use Valid to check before
// calling any other method on a handle of unknown provenance.
type Task[T any] struct {
	impl *taskImpl[T]
}

// Valid reports whether t refers to a constructed task. Only tasks
// obtained from MakeTask and its relatives are valid.
func (t Task[T]) Valid() bool {
	return t.impl != nil
}

// Start submits the task's body for execution. It panics if t is invalid
// or if the task has already been started — including tasks with parents,
// which start themselves automatically once every parent is ready and must
// not be started again by the caller.
func (t Task[T]) Start() {
	t.impl.Start()
}

// Future returns the Future[T] this task publishes its result into. The
// Future is valid immediately, whether or not the task has started.
func (t Task[T]) Future() *Future[T] {
	return t.impl.future
}

// Scheduler returns the scheduler this task's body runs on.
func (t Task[T]) Scheduler() Scheduler {
	return t.impl.scheduler
}

// Name returns the diagnostic label most recently set with SetName, or the
// empty string if none has been set. Names are for logging and tracing;
// nothing in this package's runtime behavior depends on them.
func (t Task[T]) Name() string {
	return t.impl.Name()
}

// SetName attaches a diagnostic label to the task, returning t for
// chaining at construction time.
func (t Task[T]) SetName(name string) Task[T] {
	t.impl.SetName(name)
	return t
}

// onReady implements dependency: it lets a dependent task register interest
// in t becoming ready without needing to know or use t's value type.
func (t Task[T]) onReady(cb func()) {
	t.impl.future.OnReady(func(T) {
		cb()
	})
}
