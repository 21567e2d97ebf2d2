// SPDX-License-Identifier: MIT

// Command negcycle searches currency markets for arbitrage loops with
// Bellman-Ford negative-cycle detection.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
