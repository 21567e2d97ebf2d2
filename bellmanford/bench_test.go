// SPDX-License-Identifier: MIT

package bellmanford_test

import (
	"testing"

	"github.com/katalvlaran/negcycle/bellmanford"
)

func benchmarkDetect(b *testing.B, n, m int) {
	g := randomGraph(b, n, m, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bellmanford.Detect(g, bellmanford.WithVirtualSource()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDetect_100x1000(b *testing.B)   { benchmarkDetect(b, 100, 1000) }
func BenchmarkDetect_500x20000(b *testing.B)  { benchmarkDetect(b, 500, 20000) }
func BenchmarkDetect_500x100000(b *testing.B) { benchmarkDetect(b, 500, 100000) }
