// SPDX-License-Identifier: MIT

package scan

// Summary is the serialisable view of an Outcome.
type Summary struct {
	RunID         string        `json:"run_id"`
	Origin        string        `json:"origin"`
	AsOf          string        `json:"as_of,omitempty"`
	Vertices      int           `json:"vertices"`
	Edges         int           `json:"edges"`
	Source        int           `json:"source"`
	Reachable     int           `json:"reachable"`
	Passes        int           `json:"passes"`
	MaxIterations int           `json:"max_iterations"`
	CapReached    bool          `json:"cap_reached"`
	Stopped       bool          `json:"stopped"`
	ElapsedMS     float64       `json:"elapsed_ms"`
	Found         bool          `json:"found"`
	Cycle         *CycleSummary `json:"cycle,omitempty"`
}

// CycleSummary describes a detected cycle for output.
type CycleSummary struct {
	Currencies    []string     `json:"currencies"`
	Vertices      []int        `json:"vertices"`
	Hops          []HopSummary `json:"hops"`
	TotalWeight   float64      `json:"total_weight"`
	ProfitFactor  float64      `json:"profit_factor"`
	ProfitPercent float64      `json:"profit_percent"`
	IsArbitrage   bool         `json:"is_arbitrage"`
	StartAmount   float64      `json:"start_amount"`
	FinalAmount   float64      `json:"final_amount"`
	Sampled       bool         `json:"sampled"`
}

// HopSummary is one hop of CycleSummary.
type HopSummary struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
	Weight float64 `json:"weight"`
	Edge   int     `json:"edge"`
}

// Summarize flattens o, projecting startAmount around the cycle.
func (o *Outcome) Summarize(startAmount float64) Summary {
	s := Summary{
		RunID:         o.RunID,
		Origin:        o.Market.Origin,
		AsOf:          o.Market.AsOf,
		Vertices:      o.Market.Graph.VertexCount(),
		Edges:         o.Market.Graph.EdgeCount(),
		Source:        o.Source,
		Reachable:     o.Reachable,
		Passes:        o.Passes,
		MaxIterations: o.Cap,
		CapReached:    o.CapReached,
		Stopped:       o.Stopped,
		ElapsedMS:     float64(o.Elapsed.Microseconds()) / 1000,
		Found:         o.Found,
	}
	if o.Report == nil {
		return s
	}

	r := o.Report
	c := &CycleSummary{
		Currencies:    o.Market.Labels(r.Vertices),
		Vertices:      append([]int(nil), r.Vertices...),
		TotalWeight:   r.TotalWeight,
		ProfitFactor:  r.ProfitFactor,
		ProfitPercent: r.ProfitPercent(),
		IsArbitrage:   r.IsArbitrage,
		StartAmount:   startAmount,
		FinalAmount:   r.FinalAmount(startAmount),
		Sampled:       r.Sampled,
	}
	for _, h := range o.Path() {
		c.Hops = append(c.Hops, HopSummary(h))
	}
	s.Cycle = c

	return s
}
