package sim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExampleConfigs_Narrowbody verifies that narrowbody.yaml loads and
// validates with the standard reward.
func TestExampleConfigs_Narrowbody(t *testing.T) {
	// GIVEN the narrowbody.yaml example config
	cfg, err := LoadBoardingConfig(filepath.Join("..", "examples", "narrowbody.yaml"))
	require.NoError(t, err, "failed to load narrowbody.yaml")

	// THEN validation passes
	require.NoError(t, cfg.Validate())

	// THEN the cabin is 30 x 6 with the default reward
	assert.Equal(t, 180, cfg.TotalSeats())
	assert.Equal(t, 1.0, cfg.BaggageFraction)
	assert.Equal(t, DefaultRewardWeights(), cfg.Reward)
}

// TestExampleConfigs_RegionalLightLuggage verifies that
// regional-light-luggage.yaml loads and boards a full episode.
func TestExampleConfigs_RegionalLightLuggage(t *testing.T) {
	// GIVEN the regional-light-luggage.yaml example config
	cfg, err := LoadBoardingConfig(filepath.Join("..", "examples", "regional-light-luggage.yaml"))
	require.NoError(t, err, "failed to load regional-light-luggage.yaml")

	// THEN the waiting penalty is raised
	assert.Equal(t, 1.0, cfg.Reward.WaitingPenalty)

	// WHEN boarded back to front
	s, err := NewBoardingSimulation(*cfg)
	require.NoError(t, err)
	carrying := 0
	for row := 1; row <= cfg.NumRows; row++ {
		for _, p := range s.Lobby.rows[row-1].Items() {
			if p.CarryingBaggage {
				carrying++
			}
		}
	}
	for !s.Terminated() {
		row := -1
		for i, ok := range s.ActionMask() {
			if ok {
				row = i
			}
		}
		_, err := s.Step(row)
		require.NoError(t, err)
	}

	// THEN every seat is taken and only luggage carriers stowed
	assert.Equal(t, cfg.TotalSeats(), s.Cabin.SeatedCount())
	assert.Equal(t, carrying, s.Metrics.StowEvents)
	assert.Less(t, carrying, cfg.TotalSeats(), "fraction 0.3 should leave some passengers without luggage")
}
