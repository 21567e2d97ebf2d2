// SPDX-License-Identifier: MIT

package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/negcycle/bellmanford"
	"github.com/katalvlaran/negcycle/core"
)

// ExampleDetectArbitrage finds the profitable loop in a four-currency ring.
func ExampleDetectArbitrage() {
	g, _ := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 0.1},
		{From: 1, To: 2, Weight: 0.1},
		{From: 2, To: 3, Weight: 0.1},
		{From: 3, To: 0, Weight: -0.5},
	})

	rep, found, err := bellmanford.DetectArbitrage(g, 0, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", found)
	fmt.Println("cycle:", rep.Vertices)
	fmt.Printf("weight: %.2f factor: %.4f\n", rep.TotalWeight, rep.ProfitFactor)
	fmt.Printf("1000 -> %.2f\n", rep.FinalAmount(1000))
	// Output:
	// found: true
	// cycle: [2 3 0 1 2]
	// weight: -0.20 factor: 1.2214
	// 1000 -> 1221.40
}

// ExampleDetect shows the typed outcome when no cycle exists.
func ExampleDetect() {
	g, _ := core.FromQuotes(3, []core.Quote{
		{From: 0, To: 1, Rate: 0.9},
		{From: 1, To: 2, Rate: 0.9},
		{From: 2, To: 0, Rate: 0.9},
	})

	d, _ := bellmanford.Detect(g, bellmanford.WithVirtualSource())
	fmt.Println("found:", d.Found())
	fmt.Println("converged:", d.Result.Converged, "passes:", d.Result.Passes)
	// Output:
	// found: false
	// converged: true passes: 2
}
