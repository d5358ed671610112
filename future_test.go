// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tpl_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	tpl "github.com/example/tpl-go"
)

func TestFutureGetBlocksUntilSet(t *testing.T) {
	sched := tpl.NewParallelScheduler(1)
	defer sched.Close()

	task := tpl.MakeTask(sched, func() int {
		time.Sleep(5 * time.Millisecond)
		return 42
	})
	task.Start()
	require.Equal(t, 42, task.Future().Get())
}

func TestFutureSetTwicePanics(t *testing.T) {
	f := tpl.MakeTaskFromValue(1)
	require.Equal(t, 1, f.Future().Get())
	require.Panics(t, func() {
		f.Future().Set(2)
	})
}

func TestFutureOnReadyFastPathRunsSynchronously(t *testing.T) {
	done := tpl.MakeTaskFromValue(7)

	var got int
	var ran bool
	done.Future().OnReady(func(v int) {
		got = v
		ran = true
	})
	require.True(t, ran)
	require.Equal(t, 7, got)
}

func TestFutureOnReadySubscribersFireInFIFOOrder(t *testing.T) {
	sched := tpl.NewManualScheduler()
	root := tpl.MakeTask(sched, func() int { return 1 })
	root.Start()

	var order []int
	var mu sync.Mutex
	for i := 0; i < 5; i++ {
		i := i
		root.Future().OnReady(func(int) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	sched.Stop()
	sched.Loop()

	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFutureWaitForTimesOutWithoutAffectingTheTask(t *testing.T) {
	sched := tpl.NewManualScheduler()
	release := make(chan struct{})
	task := tpl.MakeTask(sched, func() int {
		<-release
		return 9
	})
	task.Start()

	go sched.Loop()

	status := task.Future().WaitFor(5 * time.Millisecond)
	require.Equal(t, tpl.Timeout, status)

	close(release)
	sched.Stop()

	require.Equal(t, 9, task.Future().Get())
}

// rapid property: a Future publishes its value exactly once, and every
// subscriber registered before or after that publish observes it exactly
// once.
func TestFuturePublishOnceAndSubscribersComplete(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		value := rapid.Int().Draw(rt, "value")

		sched := tpl.NewManualScheduler()
		task := tpl.MakeTask(sched, func() int { return value })

		var fired atomic.Int32
		for i := 0; i < n; i++ {
			task.Future().OnReady(func(v int) {
				require.Equal(rt, value, v)
				fired.Add(1)
			})
		}

		task.Start()
		go sched.Loop()

		got := task.Future().Get()
		require.Equal(rt, value, got)

		sched.Stop()

		// A subscriber registered after readiness still fires, synchronously.
		var late int32
		task.Future().OnReady(func(int) { late = 1 })
		require.Equal(rt, int32(1), late)

		for fired.Load() != int32(n) {
			time.Sleep(time.Millisecond)
		}
	})
}
