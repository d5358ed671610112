// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tpl

// MakeTask constructs a task with no parents. The task does not start on
// its own; call Start (or MakeTaskAndStart) once it is ready to run.
func MakeTask[T any](scheduler Scheduler, body func() T) Task[T] {
	impl := newRootTaskImpl[T](resolveScheduler(scheduler), body)
	return Task[T]{impl: impl}
}

// MakeTaskAndStart constructs a task with no parents and starts it
// immediately.
func MakeTaskAndStart[T any](scheduler Scheduler, body func() T) Task[T] {
	t := MakeTask[T](scheduler, body)
	t.Start()
	return t
}

// MakeTaskFromValue returns a task whose Future is already published with
// v. It never runs on any scheduler; Start is not valid to call on it.
func MakeTaskFromValue[T any](v T) Task[T] {
	impl := newStartedTaskImpl[T](nil)
	impl.future.Set(v)
	return Task[T]{impl: impl}
}

// MakeTask1 constructs a task with a single parent. Its body starts
// automatically once p1 is ready; the caller must not call Start on the
// result.
func MakeTask1[P1, T any](scheduler Scheduler, p1 Task[P1], fn func(Task[P1]) T) Task[T] {
	impl := newRootTaskImpl[T](resolveScheduler(scheduler), func() T {
		return fn(p1)
	})
	wireParents(impl, []dependency{p1})
	return Task[T]{impl: impl}
}

// MakeTask2 constructs a task with two parents. Its body starts
// automatically once both p1 and p2 are ready; the caller must not call
// Start on the result.
func MakeTask2[P1, P2, T any](scheduler Scheduler, p1 Task[P1], p2 Task[P2], fn func(Task[P1], Task[P2]) T) Task[T] {
	impl := newRootTaskImpl[T](resolveScheduler(scheduler), func() T {
		return fn(p1, p2)
	})
	wireParents(impl, []dependency{p1, p2})
	return Task[T]{impl: impl}
}

// MakeTask3 constructs a task with three parents. Its body starts
// automatically once p1, p2, and p3 are all ready; the caller must not
// call Start on the result.
func MakeTask3[P1, P2, P3, T any](scheduler Scheduler, p1 Task[P1], p2 Task[P2], p3 Task[P3], fn func(Task[P1], Task[P2], Task[P3]) T) Task[T] {
	impl := newRootTaskImpl[T](resolveScheduler(scheduler), func() T {
		return fn(p1, p2, p3)
	})
	wireParents(impl, []dependency{p1, p2, p3})
	return Task[T]{impl: impl}
}

// WhenAll constructs a task over a homogeneous slice of parents. Its body
// starts automatically once every parent is ready, and produces their
// values in the same order as parents. The caller must not call Start on
// the result.
func WhenAll[T any](scheduler Scheduler, parents []Task[T]) Task[[]T] {
	deps := make([]dependency, len(parents))
	for i, p := range parents {
		deps[i] = p
	}

	impl := newRootTaskImpl[[]T](resolveScheduler(scheduler), func() []T {
		values := make([]T, len(parents))
		for i, p := range parents {
			values[i] = p.Future().Get()
		}
		return values
	})
	wireParents(impl, deps)
	return Task[[]T]{impl: impl}
}

// Then constructs a task whose single parent is parent, running fn once
// parent is ready. If scheduler is omitted or nil, the new task inherits
// parent's scheduler. It cannot be a method on Task[T] because Go methods
// may not introduce a type parameter beyond those of the receiver.
func Then[T, U any](parent Task[T], fn func(Task[T]) U, scheduler ...Scheduler) Task[U] {
	sched := inheritedScheduler(scheduler, parent.Scheduler())
	return MakeTask1[T, U](sched, parent, fn)
}

// Unwrap flattens a task-of-a-task into a single task that publishes once
// the inner task publishes. If scheduler is omitted or nil, the proxy
// inherits outer's scheduler, though the proxy never itself runs a body on
// any scheduler — it exists purely to relay the inner Future.
func Unwrap[T any](outer Task[Task[T]], scheduler ...Scheduler) Task[T] {
	sched := inheritedScheduler(scheduler, outer.Scheduler())
	proxyImpl := newStartedTaskImpl[T](sched)

	outer.impl.future.OnReady(func(inner Task[T]) {
		inner.impl.future.OnReady(func(v T) {
			proxyImpl.future.Set(v)
		})
	})

	return Task[T]{impl: proxyImpl}
}

// inheritedScheduler picks the first non-nil element of overrides, falling
// back to inherited. Unlike resolveScheduler it never consults the global
// default and never panics. inherited is nil when the parent came from
// MakeTaskFromValue; Then then passes nil on to MakeTask1, which falls back
// to the default scheduler.
func inheritedScheduler(overrides []Scheduler, inherited Scheduler) Scheduler {
	for _, s := range overrides {
		if s != nil {
			return s
		}
	}
	return inherited
}
