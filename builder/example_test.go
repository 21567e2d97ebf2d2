// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/negcycle/builder"
)

// ExampleCrossRates derives a three-currency market from one day of
// reference rates quoted against EUR.
func ExampleCrossRates() {
	day := builder.Snapshot{
		Date:  "2024-03-01",
		Rates: []builder.RateQuote{{Currency: "USD", Rate: 1.08}, {Currency: "GBP", Rate: 0.85}},
	}
	codes := builder.CurrencyList("EUR", []builder.Snapshot{day}, 0)

	g, err := builder.CrossRates(codes, []builder.Snapshot{day})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(codes, g.VertexCount(), g.EdgeCount())
	fmt.Printf("GBP→USD %.4f\n", g.Edge(g.EdgesBetween(2, 1)[0]).Rate())
	// Output:
	// [EUR USD GBP] 3 6
	// GBP→USD 1.2706
}

// ExampleRandomMarket builds a small seeded market with the known loop.
func ExampleRandomMarket() {
	g, err := builder.RandomMarket(8, 40, builder.WithSeed(7), builder.WithInsertedCycle(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount() <= 44)
	fmt.Printf("loop profit %.4f\n", builder.CycleProfit())
	// Output:
	// 8 true
	// loop profit 1.0811
}
