// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package tpl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	tpl "github.com/example/tpl-go"
)

func TestUnwrapFlattensNestedTask(t *testing.T) {
	sched := tpl.NewParallelScheduler(2)
	defer sched.Close()

	outer := tpl.MakeTaskAndStart(sched, func() tpl.Task[int] {
		return tpl.MakeTaskAndStart(sched, func() int { return 41 })
	})

	flat := tpl.Unwrap(outer)
	require.Equal(t, 41, flat.Future().Get())
}

func TestUnwrapWaitsForInnerEvenIfOuterFinishesFirst(t *testing.T) {
	sched := tpl.NewManualScheduler()
	go sched.Loop()
	defer sched.Stop()

	inner := tpl.MakeTask(sched, func() int { return 7 })

	outer := tpl.MakeTaskAndStart(sched, func() tpl.Task[int] {
		return inner
	})

	flat := tpl.Unwrap(outer)
	require.False(t, flat.Future().IsReady())

	inner.Start()
	require.Equal(t, 7, flat.Future().Get())
}

func TestUnwrapInheritsOuterSchedulerWhenNoneGiven(t *testing.T) {
	sched := tpl.NewManualScheduler()
	go sched.Loop()
	defer sched.Stop()

	inner := tpl.MakeTaskAndStart(sched, func() int { return 3 })
	outer := tpl.MakeTaskAndStart(sched, func() tpl.Task[int] { return inner })

	flat := tpl.Unwrap(outer)
	require.Equal(t, sched, flat.Scheduler())
	require.Equal(t, 3, flat.Future().Get())
}

func TestUnwrapAcceptsExplicitScheduler(t *testing.T) {
	outerSched := tpl.NewManualScheduler()
	go outerSched.Loop()
	defer outerSched.Stop()

	proxySched := tpl.NewManualScheduler()
	defer proxySched.Stop()

	inner := tpl.MakeTaskAndStart(outerSched, func() int { return 5 })
	outer := tpl.MakeTaskAndStart(outerSched, func() tpl.Task[int] { return inner })

	flat := tpl.Unwrap(outer, proxySched)
	require.Equal(t, proxySched, flat.Scheduler())
	require.Equal(t, 5, flat.Future().Get())
}
