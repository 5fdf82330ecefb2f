package trace

import "math"

// TraceSummary aggregates statistics from a BoardingTrace.
type TraceSummary struct {
	TotalDecisions  int
	TotalReward     float64
	MeanReward      float64
	MinReward       float64
	MaxReward       float64
	MaxWaiting      int
	FinalTick       int64
	DrainTicks      int         // ticks run by the final, draining decision
	RowDistribution map[int]int // 0-based row → number of releases
}

// Summarize computes aggregate statistics from a BoardingTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(bt *BoardingTrace) *TraceSummary {
	summary := &TraceSummary{
		RowDistribution: make(map[int]int),
	}
	if bt == nil || len(bt.Decisions) == 0 {
		return summary
	}

	summary.TotalDecisions = len(bt.Decisions)
	summary.MinReward = math.Inf(1)
	summary.MaxReward = math.Inf(-1)
	for _, d := range bt.Decisions {
		summary.RowDistribution[d.Row]++
		summary.TotalReward += d.Reward
		summary.MinReward = math.Min(summary.MinReward, d.Reward)
		summary.MaxReward = math.Max(summary.MaxReward, d.Reward)
		if d.Waiting > summary.MaxWaiting {
			summary.MaxWaiting = d.Waiting
		}
	}
	summary.MeanReward = summary.TotalReward / float64(len(bt.Decisions))

	last := bt.Decisions[len(bt.Decisions)-1]
	summary.FinalTick = last.Tick
	if last.Terminated {
		summary.DrainTicks = last.TicksRun
	}
	return summary
}
