package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// RewardWeights groups the coefficients of the per-tick reward.
type RewardWeights struct {
	SeatedWeight   float64 `yaml:"seated_weight"`   // credit per occupied seat
	WaitingPenalty float64 `yaml:"waiting_penalty"` // cost per WAITING passenger in the aisle
	MovingPenalty  float64 `yaml:"moving_penalty"`  // cost per MOVING passenger in the aisle
}

// DefaultRewardWeights returns the standard reward: +1 per seated passenger,
// -0.5 per waiting and -0.2 per moving passenger.
func DefaultRewardWeights() RewardWeights {
	return RewardWeights{SeatedWeight: 1.0, WaitingPenalty: 0.5, MovingPenalty: 0.2}
}

// BoardingConfig groups the parameters of one boarding episode.
// Loadable from YAML via LoadBoardingConfig(path).
type BoardingConfig struct {
	NumRows         int           `yaml:"num_rows"`         // cabin rows (must be > 0)
	SeatsPerRow     int           `yaml:"seats_per_row"`    // seats in every row (must be > 0)
	BaggageFraction float64       `yaml:"baggage_fraction"` // probability a passenger carries luggage, in [0, 1]
	Seed            int64         `yaml:"seed"`             // drives baggage assignment and random policies
	Reward          RewardWeights `yaml:"reward"`
}

// NewBoardingConfig returns a config where every passenger carries baggage
// and the default reward weights apply.
func NewBoardingConfig(numRows, seatsPerRow int) BoardingConfig {
	return BoardingConfig{
		NumRows:         numRows,
		SeatsPerRow:     seatsPerRow,
		BaggageFraction: 1.0,
		Reward:          DefaultRewardWeights(),
	}
}

// TotalSeats returns the cabin capacity.
func (c BoardingConfig) TotalSeats() int {
	return c.NumRows * c.SeatsPerRow
}

// Validate checks dimensions and tuning parameters.
func (c BoardingConfig) Validate() error {
	if c.NumRows <= 0 {
		return fmt.Errorf("num_rows must be positive, got %d: %w", c.NumRows, ErrInvalidConfiguration)
	}
	if c.SeatsPerRow <= 0 {
		return fmt.Errorf("seats_per_row must be positive, got %d: %w", c.SeatsPerRow, ErrInvalidConfiguration)
	}
	if math.IsNaN(c.BaggageFraction) || c.BaggageFraction < 0 || c.BaggageFraction > 1 {
		return fmt.Errorf("baggage_fraction must be in [0, 1], got %f: %w", c.BaggageFraction, ErrInvalidConfiguration)
	}
	for name, w := range map[string]float64{
		"seated_weight":   c.Reward.SeatedWeight,
		"waiting_penalty": c.Reward.WaitingPenalty,
		"moving_penalty":  c.Reward.MovingPenalty,
	} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("reward.%s must be a finite number, got %f: %w", name, w, ErrInvalidConfiguration)
		}
	}
	return nil
}

// LoadBoardingConfig reads and parses a YAML boarding configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected. Keys missing
// from the file keep the values of NewBoardingConfig.
func LoadBoardingConfig(path string) (*BoardingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading boarding config: %w", err)
	}
	cfg := NewBoardingConfig(0, 0)
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing boarding config: %w", err)
	}
	return &cfg, nil
}
