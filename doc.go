// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package tpl provides a small Task Parallel Library core: a one-shot
// Future, a typed Task/taskImpl dependency graph built on top of it, and a
// Scheduler abstraction with parallel-pool and manual-loop flavors.
//
// Tasks are constructed with MakeTask and friends, bound to a Scheduler and
// optionally to parent tasks. When every parent's Future becomes ready, a
// dependent task's body is submitted to its Scheduler automatically. A
// task's own Future in turn notifies its own waiters and subscribers when
// its body completes, which is how dependent tasks further down the graph
// get woken.
//
// The package is agnostic to what task bodies do; it provides no
// cancellation, retries, or exception propagation across Then/Unwrap
// chains. See the tplobs submodule for optional structured logging,
// tracing, and metrics that can be layered around task bodies without
// touching this package.
package tpl
