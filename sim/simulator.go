// sim/simulator.go
package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// BoardingState is the lifecycle state of an episode.
type BoardingState string

const (
	StateBoarding BoardingState = "boarding"
	StateComplete BoardingState = "complete"
)

// RenderMode selects the text layout produced by Render.
type RenderMode string

const (
	RenderHuman   RenderMode = "human"   // multi-line dump of lobby, aisle and cabin
	RenderCompact RenderMode = "compact" // single line, suitable for logs
)

// EmptySlot is the value emitted for both fields of an empty observation slot.
const EmptySlot = -1

// StepInfo carries diagnostics about a Step call. None of it is needed to
// act; it mirrors the state the reward was computed from.
type StepInfo struct {
	Tick           int64   `json:"tick"`            // ticks since reset
	TicksRun       int     `json:"ticks_run"`       // ticks run by this step
	Seated         int     `json:"seated"`          // occupied seats
	Waiting        int     `json:"waiting"`         // WAITING passengers in the aisle
	Moving         int     `json:"moving"`          // MOVING passengers in the aisle
	Standing       int     `json:"standing"`        // STANDING passengers in the aisle
	LobbyRemaining int     `json:"lobby_remaining"` // passengers not yet released
	EpisodeReward  float64 `json:"episode_reward"`  // reward accumulated since reset
}

// StepResult is returned by Step.
type StepResult struct {
	Observation []int
	Reward      float64 // sum of the per-tick rewards of the ticks run by this step
	Terminated  bool
	Info        StepInfo
}

// BoardingSimulation owns the lobby, the aisle and the cabin of one episode
// and advances them in response to row-release decisions.
// Not safe for concurrent use; independent instances share no state.
type BoardingSimulation struct {
	Config  BoardingConfig
	Lobby   *Lobby
	Aisle   *Aisle
	Cabin   *Cabin
	Metrics *Metrics
	// Clock counts ticks since the last Reset
	Clock int64

	state BoardingState
	rng   *PartitionedRNG
}

// NewBoardingSimulation creates a simulation and resets it with cfg.
func NewBoardingSimulation(cfg BoardingConfig) (*BoardingSimulation, error) {
	s := &BoardingSimulation{}
	if _, err := s.Reset(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds the lobby, cabin and aisle from scratch and returns the
// initial observation. Every passenger starts MOVING in its row's lobby
// queue and every seat starts empty. The previous episode is left untouched
// when cfg is invalid.
func (s *BoardingSimulation) Reset(cfg BoardingConfig) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s.Config = cfg
	s.rng = NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	s.Lobby = NewLobby(cfg.NumRows)
	s.Cabin = NewCabin(cfg.NumRows, cfg.SeatsPerRow)
	s.Aisle = NewAisle(cfg.NumRows)
	s.Metrics = NewMetrics()
	s.Clock = 0
	s.state = StateBoarding

	baggageRNG := s.rng.ForSubsystem(SubsystemBaggage)
	for rowNo := 1; rowNo <= cfg.NumRows; rowNo++ {
		for pos := 1; pos <= cfg.SeatsPerRow; pos++ {
			carrying := baggageRNG.Float64() < cfg.BaggageFraction
			s.Lobby.Add(NewPassenger(rowNo, SeatID(rowNo, pos, cfg.SeatsPerRow), carrying))
		}
	}
	logrus.Debugf("Reset boarding simulation: %d rows x %d seats, baggage fraction %.2f",
		cfg.NumRows, cfg.SeatsPerRow, cfg.BaggageFraction)
	return s.Observation(), nil
}

// State returns the current lifecycle state.
func (s *BoardingSimulation) State() BoardingState {
	return s.state
}

// Terminated reports whether every passenger is seated.
func (s *BoardingSimulation) Terminated() bool {
	return s.state == StateComplete
}

// TotalSeats returns the number of passengers (and seats) in the episode.
func (s *BoardingSimulation) TotalSeats() int {
	return s.Config.TotalSeats()
}

// ActionMask returns one entry per lobby row, true iff that row still has
// passengers to release. Row i of the mask is cabin row i+1.
func (s *BoardingSimulation) ActionMask() []bool {
	mask := make([]bool, s.Lobby.NumRows())
	for i := range mask {
		mask[i] = s.Lobby.RowLen(i+1) > 0
	}
	return mask
}

// Step releases the head passenger of lobby row `row` (0-based) into the aisle
// and runs the simulation forward.
//
// While passengers remain in the lobby exactly one tick is run. Once the
// lobby is empty no further decisions exist, so ticks are run until the aisle
// drains, and the returned reward is the sum over all of them.
//
// Validation happens before any mutation: an invalid row leaves the episode
// unchanged and returns ErrInvalidAction.
func (s *BoardingSimulation) Step(row int) (StepResult, error) {
	if s.state == StateComplete {
		return StepResult{}, fmt.Errorf("row %d: episode already complete: %w", row, ErrInvalidAction)
	}
	if row < 0 || row >= s.Config.NumRows {
		return StepResult{}, fmt.Errorf("row %d out of range [0, %d): %w", row, s.Config.NumRows, ErrInvalidAction)
	}
	if s.Lobby.RowLen(row+1) == 0 {
		return StepResult{}, fmt.Errorf("row %d has no passengers left: %w", row, ErrInvalidAction)
	}

	p := s.Lobby.RemoveFront(row + 1)
	s.Aisle.Enqueue(p)
	s.Metrics.Decisions++
	logrus.Debugf("[tick %07d] Released passenger %s from row %d", s.Clock, p, row+1)

	reward := 0.0
	ticksRun := 0
	if s.Lobby.TotalRemaining() > 0 {
		r, err := s.tick()
		if err != nil {
			return StepResult{}, err
		}
		reward += r
		ticksRun++
	} else {
		for s.Aisle.IsActive() {
			r, err := s.tick()
			if err != nil {
				return StepResult{}, err
			}
			reward += r
			ticksRun++
		}
	}

	if s.Lobby.TotalRemaining() == 0 && !s.Aisle.IsActive() {
		s.state = StateComplete
		logrus.Infof("[tick %07d] Boarding complete after %d decisions, episode reward %.2f",
			s.Clock, s.Metrics.Decisions, s.Metrics.TotalReward)
	}

	return StepResult{
		Observation: s.Observation(),
		Reward:      reward,
		Terminated:  s.Terminated(),
		Info:        s.info(ticksRun),
	}, nil
}

// tick runs one cabin-assignment pass followed by one aisle advance and
// returns the reward of the resulting state.
func (s *BoardingSimulation) tick() (float64, error) {
	if err := s.assignSeats(); err != nil {
		return 0, err
	}
	s.Aisle.AdvanceOneTick()
	s.Clock++

	reward := s.Reward()
	s.Metrics.recordTick(s.Aisle, s.Cabin.SeatedCount(), reward)
	logrus.Debugf("[tick %07d] aisle=%v reward=%.2f", s.Clock, s.Aisle, reward)
	return reward, nil
}

// assignSeats offers every passenger level with a cabin row a seat in that
// row and clears the slots of those who sit down.
func (s *BoardingSimulation) assignSeats() error {
	n := min(s.Aisle.CabinLength(), s.Aisle.Len())
	for i := 0; i < n; i++ {
		p := s.Aisle.At(i)
		if p == nil {
			continue
		}
		wasCarrying := p.CarryingBaggage
		seated, err := s.Cabin.Row(i + 1).TrySit(p)
		if err != nil {
			return fmt.Errorf("[tick %07d] aisle slot %d: %w", s.Clock, i, err)
		}
		if wasCarrying && !p.CarryingBaggage {
			s.Metrics.StowEvents++
		}
		if seated {
			s.Aisle.Clear(i)
			logrus.Debugf("[tick %07d] Passenger %s seated in row %d", s.Clock, p, i+1)
		}
	}
	return nil
}

// Reward computes the reward of the current state from scratch:
// seated passengers are credited, waiting and moving passengers cost.
// STANDING passengers are neither credited nor penalized.
func (s *BoardingSimulation) Reward() float64 {
	w := s.Config.Reward
	return float64(s.Cabin.SeatedCount())*w.SeatedWeight -
		float64(s.Aisle.Count(StatusWaiting))*w.WaitingPenalty -
		float64(s.Aisle.Count(StatusMoving))*w.MovingPenalty
}

// Observation returns the aisle as a flat sequence of (seatID, statusCode)
// pairs, front slot first, with (-1, -1) for empty slots. The length is
// always 2 x TotalSeats: shorter aisles are padded, longer ones truncated.
func (s *BoardingSimulation) Observation() []int {
	capacity := s.TotalSeats()
	obs := make([]int, 2*capacity)
	for i := range obs {
		obs[i] = EmptySlot
	}
	n := min(capacity, s.Aisle.Len())
	for i := 0; i < n; i++ {
		if p := s.Aisle.At(i); p != nil {
			obs[2*i] = p.SeatID
			obs[2*i+1] = int(p.Status)
		}
	}
	return obs
}

func (s *BoardingSimulation) info(ticksRun int) StepInfo {
	return StepInfo{
		Tick:           s.Clock,
		TicksRun:       ticksRun,
		Seated:         s.Cabin.SeatedCount(),
		Waiting:        s.Aisle.Count(StatusWaiting),
		Moving:         s.Aisle.Count(StatusMoving),
		Standing:       s.Aisle.Count(StatusStanding),
		LobbyRemaining: s.Lobby.TotalRemaining(),
		EpisodeReward:  s.Metrics.TotalReward,
	}
}

// Render returns a text dump of the episode. It never changes state.
func (s *BoardingSimulation) Render(mode RenderMode) (string, error) {
	switch mode {
	case RenderHuman:
		var sb strings.Builder
		fmt.Fprintf(&sb, "tick %d (%s), reward %.2f\n", s.Clock, s.state, s.Metrics.TotalReward)
		sb.WriteString(s.Lobby.String())
		fmt.Fprintf(&sb, "aisle %v\n", s.Aisle)
		sb.WriteString(s.Cabin.String())
		return sb.String(), nil
	case RenderCompact:
		return fmt.Sprintf("tick=%d state=%s lobby=%d aisle=%v seated=%d/%d",
			s.Clock, s.state, s.Lobby.TotalRemaining(), s.Aisle, s.Cabin.SeatedCount(), s.TotalSeats()), nil
	default:
		return "", fmt.Errorf("unknown render mode %q; valid modes: [human, compact]", mode)
	}
}
