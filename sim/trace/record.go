// Package trace provides decision-trace recording for boarding episodes.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DecisionRecord captures a single row-release decision and the state the
// simulation reached after it.
type DecisionRecord struct {
	Decision       int     // 0-based index of the decision within the episode
	Row            int     // 0-based lobby row that released a passenger
	SeatID         int     // seat of the released passenger
	Reward         float64 // reward returned by the step
	Tick           int64   // simulation clock after the step
	TicksRun       int     // ticks run by the step (more than one only while draining)
	Seated         int
	Waiting        int
	Moving         int
	LobbyRemaining int
	Terminated     bool
}
