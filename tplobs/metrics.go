// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tplobs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
)

// Metered wraps body to record a count and a duration histogram against
// metricName, using the global otel meter provider.
func Metered[T any](metricName string, body func() T) func() T {
	meter := otel.GetMeterProvider().Meter("tplobs")
	counter, _ := meter.Int64Counter(metricName + ".count")
	duration, _ := meter.Float64Histogram(metricName + ".duration")

	return func() T {
		start := time.Now()
		result := body()
		counter.Add(context.Background(), 1)
		duration.Record(context.Background(), time.Since(start).Seconds())
		return result
	}
}
