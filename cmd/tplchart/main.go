// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// tplchart renders a bar chart comparing the estimated makespan of a fixed
// task graph across a range of worker pool sizes, using the discrete-event
// estimator in internal/simulate rather than actually running anything.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/example/tpl-go/internal/simulate"
)

func main() {
	out := flag.String("out", "makespan.png", "output PNG path")
	flag.Parse()

	workerCounts := []int{1, 2, 4, 8, 16}
	values := make(plotter.Values, len(workerCounts))
	labels := make([]string, len(workerCounts))

	for i, workers := range workerCounts {
		result, err := simulate.Estimate(diamondFanOutGraph(workers))
		if err != nil {
			log.Fatalf("tplchart: %v", err)
		}
		values[i] = result.Makespan.Seconds() * 1000
		labels[i] = fmt.Sprintf("%d workers", workers)
	}

	p := plot.New()
	p.Title.Text = "Estimated makespan by worker count"
	p.Y.Label.Text = "makespan (ms)"
	p.X.Label.Text = "configuration"

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		log.Fatalf("tplchart: %v", err)
	}
	bars.Color = color.RGBA{R: 64, G: 128, B: 192, A: 255}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatalf("tplchart: saving %s: %v", *out, err)
	}
}

// diamondFanOutGraph builds a graph with a root task, a fan-out of 8
// parallel middle tasks, and a join task, all competing for one pool sized
// to workers.
func diamondFanOutGraph(workers int) *simulate.GraphSpec {
	const fanOut = 8
	nodes := make([]simulate.NodeSpec, 0, fanOut+2)
	nodes = append(nodes, simulate.NodeSpec{Name: "root", Duration: 5 * time.Millisecond})

	middleIndices := make([]int, fanOut)
	for i := 0; i < fanOut; i++ {
		nodes = append(nodes, simulate.NodeSpec{
			Name:     fmt.Sprintf("middle-%d", i),
			Duration: 20 * time.Millisecond,
			Parents:  []int{0},
		})
		middleIndices[i] = len(nodes) - 1
	}

	nodes = append(nodes, simulate.NodeSpec{
		Name:     "join",
		Duration: 5 * time.Millisecond,
		Parents:  middleIndices,
	})

	return &simulate.GraphSpec{
		Nodes:             nodes,
		ConcurrencyLimits: []int{workers},
	}
}
