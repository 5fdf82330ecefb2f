// Package policy provides built-in decision clients for the boarding
// simulation and the loop that drives an episode with one of them.
package policy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/inference-sim/boarding-sim/sim"
)

// ErrNoValidRow is returned when the action mask has no releasable row.
var ErrNoValidRow = errors.New("no valid row in action mask")

// Policy chooses which lobby row releases its next passenger.
// Implementations receive the latest observation and the action mask and
// must return a 0-based row whose mask entry is true.
type Policy interface {
	SelectRow(obs []int, mask []bool) (int, error)
}

// BackToFront releases the rearmost row that still has passengers.
type BackToFront struct{}

// SelectRow implements Policy for BackToFront.
func (BackToFront) SelectRow(_ []int, mask []bool) (int, error) {
	for i := len(mask) - 1; i >= 0; i-- {
		if mask[i] {
			return i, nil
		}
	}
	return 0, ErrNoValidRow
}

// FrontToBack releases the frontmost row that still has passengers.
type FrontToBack struct{}

// SelectRow implements Policy for FrontToBack.
func (FrontToBack) SelectRow(_ []int, mask []bool) (int, error) {
	for i, ok := range mask {
		if ok {
			return i, nil
		}
	}
	return 0, ErrNoValidRow
}

// RoundRobin cycles through rows from the back, skipping exhausted ones.
type RoundRobin struct {
	counter int
}

// SelectRow implements Policy for RoundRobin.
func (rr *RoundRobin) SelectRow(_ []int, mask []bool) (int, error) {
	n := len(mask)
	for k := 0; k < n; k++ {
		row := n - 1 - (rr.counter+k)%n
		if mask[row] {
			rr.counter += k + 1
			return row, nil
		}
	}
	return 0, ErrNoValidRow
}

// Random picks uniformly among the releasable rows.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random policy whose choices are fixed by seed.
func NewRandom(seed int64) *Random {
	return &Random{
		rng: sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemPolicy),
	}
}

// SelectRow implements Policy for Random.
func (r *Random) SelectRow(_ []int, mask []bool) (int, error) {
	valid := make([]int, 0, len(mask))
	for i, ok := range mask {
		if ok {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return 0, ErrNoValidRow
	}
	return valid[r.rng.Intn(len(valid))], nil
}

// ValidPolicies is the set of recognized policy names.
var ValidPolicies = map[string]bool{"random": true, "back-to-front": true, "front-to-back": true, "round-robin": true}

// NewPolicy creates a policy by name.
// Valid names: "random", "back-to-front", "front-to-back", "round-robin".
// seed only affects "random".
func NewPolicy(name string, seed int64) Policy {
	switch name {
	case "random":
		return NewRandom(seed)
	case "back-to-front":
		return BackToFront{}
	case "front-to-back":
		return FrontToBack{}
	case "round-robin":
		return &RoundRobin{}
	default:
		panic(fmt.Sprintf("unknown policy %q; valid policies: [random, back-to-front, front-to-back, round-robin]", name))
	}
}
