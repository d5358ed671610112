// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tpl

import (
	"sync/atomic"

	"github.com/example/tpl-go/internal/liveref"
)

// dependency is the minimal readiness signal a task needs from a parent of
// any value type. Task[P] implements it for every P, which lets a
// dependent task register readiness callbacks across parents of differing
// types without a type-erased container — the closure that ultimately
// invokes the dependent's body is built directly from the caller's
// correctly-typed parent handles at MakeTaskN call time instead.
type dependency interface {
	onReady(cb func())
}

// dependencyContext tracks how many of a task's parents remain unresolved.
// It exists purely for readiness aggregation: unlike the original this
// runtime is modeled on, it does not need to also hold strong references to
// parent handles, because the wrapped body closure built by MakeTaskN
// already captures the caller's typed parent Task values directly, which
// keeps their underlying task impls (and therefore their Futures) reachable
// for as long as the body closure itself is reachable.
type dependencyContext struct {
	pending atomic.Int32
}

// wireParents arranges for impl.Start to run once every parent has become
// ready. The DependencyContext is jointly owned by one reference per
// parent-completion callback plus one self-keepalive reference registered
// on impl's own future just before Start is called, so it is released
// (deterministically, exactly once) only after impl itself publishes.
func wireParents[T any](impl *taskImpl[T], parents []dependency) {
	n := len(parents)
	if n == 0 {
		return
	}

	ctx := &dependencyContext{}
	ctx.pending.Store(int32(n))

	ref := liveref.New(ctx, func(*dependencyContext) {})
	for i := 1; i < n; i++ {
		ref.Add()
	}

	for _, p := range parents {
		p.onReady(func() {
			if ctx.pending.Add(-1) == 0 {
				ref.Add()
				impl.future.OnReady(func(T) {
					ref.Release()
				})
				impl.Start()
			}
			ref.Release()
		})
	}
}
