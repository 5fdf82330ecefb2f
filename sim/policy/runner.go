package policy

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/boarding-sim/sim"
	"github.com/inference-sim/boarding-sim/sim/trace"
)

// EpisodeResult summarizes one completed boarding episode.
type EpisodeResult struct {
	ID          string
	Policy      string
	NumRows     int
	SeatsPerRow int
	Seed        int64
	Decisions   int
	Ticks       int64
	TotalReward float64
	StowEvents  int
	PeakWaiting int
	Releases    []int        // 0-based rows in release order
	Metrics     *sim.Metrics // final episode metrics; nil for stored results
}

// RunEpisode boards a fresh simulation built from cfg, asking p for every
// decision until the episode terminates. bt may be nil.
func RunEpisode(cfg sim.BoardingConfig, name string, p Policy, bt *trace.BoardingTrace) (*EpisodeResult, error) {
	s, err := sim.NewBoardingSimulation(cfg)
	if err != nil {
		return nil, err
	}

	result := &EpisodeResult{
		ID:          uuid.NewString(),
		Policy:      name,
		NumRows:     cfg.NumRows,
		SeatsPerRow: cfg.SeatsPerRow,
		Seed:        cfg.Seed,
		Releases:    make([]int, 0, s.TotalSeats()),
	}

	obs := s.Observation()
	for !s.Terminated() {
		if len(result.Releases) >= s.TotalSeats() {
			return nil, fmt.Errorf("episode %s: not terminated after %d decisions", result.ID, len(result.Releases))
		}
		row, err := p.SelectRow(obs, s.ActionMask())
		if err != nil {
			return nil, fmt.Errorf("episode %s: policy %s: %w", result.ID, name, err)
		}
		released := s.Lobby.Peek(row + 1)
		res, err := s.Step(row)
		if err != nil {
			return nil, fmt.Errorf("episode %s: %w", result.ID, err)
		}
		bt.RecordDecision(trace.DecisionRecord{
			Decision:       len(result.Releases),
			Row:            row,
			SeatID:         released.SeatID,
			Reward:         res.Reward,
			Tick:           res.Info.Tick,
			TicksRun:       res.Info.TicksRun,
			Seated:         res.Info.Seated,
			Waiting:        res.Info.Waiting,
			Moving:         res.Info.Moving,
			LobbyRemaining: res.Info.LobbyRemaining,
			Terminated:     res.Terminated,
		})
		result.Releases = append(result.Releases, row)
		obs = res.Observation
	}

	result.Decisions = s.Metrics.Decisions
	result.Ticks = s.Metrics.Ticks
	result.TotalReward = s.Metrics.TotalReward
	result.StowEvents = s.Metrics.StowEvents
	result.PeakWaiting = s.Metrics.PeakWaiting
	result.Metrics = s.Metrics
	logrus.Infof("Episode %s (%s): %d decisions, %d ticks, reward %.2f",
		result.ID, name, result.Decisions, result.Ticks, result.TotalReward)
	return result, nil
}
