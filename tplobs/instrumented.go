// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tplobs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	tpl "github.com/example/tpl-go"
)

// Instrumented combines logging, metrics, and tracing around body into a
// single wrapper, applied inside-out so the span recorded by tracing
// encloses the timing recorded by metrics, which in turn encloses the pair
// of log lines from logging.
func Instrumented[T any](ctx context.Context, operationName string, body func() T) func() T {
	logged := Logged(operationName, body)
	metered := Metered(operationName, logged)
	return Traced(ctx, operationName, metered)
}

// schedulerFunc adapts a plain closure to the tpl.Scheduler interface.
type schedulerFunc func(fn func())

func (f schedulerFunc) Schedule(fn func()) {
	f(fn)
}

// InstrumentScheduler wraps inner to record, under name, a count of every
// closure submitted and a histogram of the delay between submission and
// the closure actually starting to run. It changes no scheduling behavior:
// every closure still reaches inner.Schedule unmodified except for the
// timing wrapper needed to measure that delay.
func InstrumentScheduler(name string, inner tpl.Scheduler) tpl.Scheduler {
	meter := otel.GetMeterProvider().Meter("tplobs")
	scheduled, _ := meter.Int64Counter(name + ".scheduled")
	queueDelay, _ := meter.Float64Histogram(name + ".queue_delay")

	return schedulerFunc(func(fn func()) {
		submitted := time.Now()
		scheduled.Add(context.Background(), 1)
		inner.Schedule(func() {
			queueDelay.Record(context.Background(), time.Since(submitted).Seconds())
			fn()
		})
	})
}
