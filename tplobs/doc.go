// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package tplobs layers structured logging, tracing, and metrics around tpl
// task bodies and schedulers, without the core tpl package needing to know
// any of these concerns exist. Every task-body decorator here takes a plain
// func() T and returns another func() T, so they compose freely and can be
// applied to any MakeTask call; InstrumentScheduler instead wraps a
// tpl.Scheduler.
package tplobs
