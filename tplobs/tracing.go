// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tplobs

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Traced wraps body in a span named operationName, started against ctx. The
// span ends when body returns; tpl itself carries no context through a
// task's body, so the caller supplies whatever context the span should be a
// child of — typically context.Background() for a root task, or a context
// captured from the enclosing scope for one that runs in response to
// external work.
func Traced[T any](ctx context.Context, operationName string, body func() T) func() T {
	tracer := otel.Tracer("tplobs")
	return func() T {
		_, span := tracer.Start(ctx, operationName)
		defer span.End()
		return body()
	}
}

// TracedWithLink is like Traced but links the new span to an existing one,
// for stitching together a task's span with the span active when its
// parent's Future became ready.
func TracedWithLink[T any](ctx context.Context, operationName string, link trace.SpanContext, body func() T) func() T {
	tracer := otel.Tracer("tplobs")
	return func() T {
		_, span := tracer.Start(ctx, operationName, trace.WithLinks(trace.Link{SpanContext: link}))
		defer span.End()
		return body()
	}
}
