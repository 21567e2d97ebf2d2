// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/negcycle/scan"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))

	return err
}

// printSummary writes the human-readable report for one detection.
func printSummary(w io.Writer, s scan.Summary) {
	fmt.Fprintf(w, "Market:      %s, %d currencies, %d rates", s.Origin, s.Vertices, s.Edges)
	if s.AsOf != "" {
		fmt.Fprintf(w, " (as of %s)", s.AsOf)
	}
	fmt.Fprintln(w)

	source := "virtual"
	if s.Source >= 0 {
		source = fmt.Sprintf("vertex %d", s.Source)
	}
	fmt.Fprintf(w, "Relaxation:  %d of %d passes from %s source, %s (%.1f ms)\n",
		s.Passes, s.MaxIterations, source, relaxationState(s), s.ElapsedMS)
	fmt.Fprintln(w)

	c := s.Cycle
	if c == nil {
		fmt.Fprintln(w, "No negative cycle detected - no arbitrage opportunities found.")
		if s.Reachable < s.Vertices {
			fmt.Fprintf(w, "Only %d of %d currencies are reachable from the source.\n", s.Reachable, s.Vertices)
		}
		if s.CapReached {
			fmt.Fprintln(w, "Relaxation did not settle; raise --max-iterations to search further.")
		}
		return
	}

	if c.IsArbitrage {
		fmt.Fprintln(w, "ARBITRAGE OPPORTUNITY DETECTED")
	} else {
		fmt.Fprintln(w, "Cycle detected but not profitable")
	}
	fmt.Fprintf(w, "Cycle:       %s\n", strings.Join(c.Currencies, " -> "))
	if c.Sampled {
		fmt.Fprintln(w, "             (found from a sample of the edges)")
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tFROM\tTO\tRATE\tWEIGHT\tEDGE")
	for i, h := range c.Hops {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.6f\t%.6f\t%d\n", i+1, h.From, h.To, h.Rate, h.Weight, h.Edge)
	}
	tw.Flush()
	fmt.Fprintln(w)

	sign := ""
	if c.ProfitFactor > 1 {
		sign = "+"
	}
	fmt.Fprintf(w, "Total cycle weight:  %.6f\n", c.TotalWeight)
	fmt.Fprintf(w, "Profit factor:       %.6f (%s%.2f%% per full cycle)\n", c.ProfitFactor, sign, c.ProfitPercent)
	fmt.Fprintf(w, "Example:             %.2f units -> %.2f units (%s%.2f)\n",
		c.StartAmount, c.FinalAmount, sign, c.FinalAmount-c.StartAmount)
}

func relaxationState(s scan.Summary) string {
	switch {
	case s.Stopped:
		return "stopped early"
	case s.CapReached:
		return "cap reached"
	default:
		return "converged"
	}
}
