// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package simulate estimates how long a task graph would take to complete
// under a given number of worker pools, without actually running any
// tasks. It exists to let tpl users compare scheduling strategies (worker
// counts, pool assignments) before committing to them.
package simulate

import (
	"cmp"
	"fmt"
	"time"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
)

// NodeSpec describes one task in a graph to be estimated: how long it runs,
// which of its siblings it depends on, and which worker pool it competes
// for a slot on.
type NodeSpec struct {
	Name     string
	Duration time.Duration
	Parents  []int
	Pool     int
}

// GraphSpec is a full task graph plus the concurrency limit of each pool
// its nodes run on.
type GraphSpec struct {
	Nodes             []NodeSpec
	ConcurrencyLimits []int
}

// Result reports the outcome of estimating a GraphSpec.
type Result struct {
	Makespan         time.Duration
	NodeFinish       []time.Duration
	MaxConcurrency   []int
	ConcurrencyLimit []int
}

type taskEvent struct {
	Time time.Duration
	Func func()
}

func (a *taskEvent) Cmp(b *taskEvent) int {
	return cmp.Compare(a.Time, b.Time)
}

// Estimate runs a discrete-event simulation of graph and returns when each
// node would finish and the graph's overall makespan, assuming every pool
// dispatches strictly in FIFO order among tasks blocked on a free slot.
func Estimate(graph *GraphSpec) (*Result, error) {
	n := len(graph.Nodes)
	poolCount := len(graph.ConcurrencyLimits)

	pending := make([]int, n)
	for i, node := range graph.Nodes {
		pending[i] = len(node.Parents)
		if node.Pool < 0 || node.Pool >= poolCount {
			return nil, fmt.Errorf("simulate: node %q references pool %d out of range [0,%d)", node.Name, node.Pool, poolCount)
		}
	}

	result := &Result{
		NodeFinish:       make([]time.Duration, n),
		MaxConcurrency:   make([]int, poolCount),
		ConcurrencyLimit: append([]int(nil), graph.ConcurrencyLimits...),
	}

	concurrency := make([]int, poolCount)
	waiters := make([]deque.Deque[int], poolCount)
	var eventHeap heap.Heap[taskEvent, heap.Min]
	var simTime time.Duration

	dependents := make([][]int, n)
	for i, node := range graph.Nodes {
		for _, p := range node.Parents {
			dependents[p] = append(dependents[p], i)
		}
	}

	var launch func(node int)
	var finish func(node int)
	var tryLaunch func(node int)

	tryLaunch = func(node int) {
		pool := graph.Nodes[node].Pool
		if concurrency[pool] < graph.ConcurrencyLimits[pool] {
			launch(node)
			return
		}
		waiters[pool].PushBack(node)
	}

	launch = func(node int) {
		pool := graph.Nodes[node].Pool
		concurrency[pool]++
		result.MaxConcurrency[pool] = max(result.MaxConcurrency[pool], concurrency[pool])

		endTime := simTime + graph.Nodes[node].Duration
		heap.PushOrderable(&eventHeap, taskEvent{
			Time: endTime,
			Func: func() { finish(node) },
		})
	}

	finish = func(node int) {
		pool := graph.Nodes[node].Pool
		concurrency[pool]--
		result.NodeFinish[node] = simTime
		result.Makespan = max(result.Makespan, simTime)

		if waiters[pool].Len() > 0 {
			next := waiters[pool].PopFront()
			launch(next)
		}

		for _, dep := range dependents[node] {
			pending[dep]--
			if pending[dep] == 0 {
				tryLaunch(dep)
			}
		}
	}

	for i := range graph.Nodes {
		if pending[i] == 0 {
			tryLaunch(i)
		}
	}

	for {
		event, ok := heap.PopOrderable(&eventHeap)
		if !ok {
			break
		}
		simTime = event.Time
		event.Func()
	}

	return result, nil
}
