package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/boarding-sim/sim"
	"github.com/inference-sim/boarding-sim/sim/trace"
)

func TestRunEpisode_AllPolicies_TerminateWithinTotalSeatsDecisions(t *testing.T) {
	cfg := sim.NewBoardingConfig(6, 3)
	for name := range ValidPolicies {
		t.Run(name, func(t *testing.T) {
			// WHEN an episode is run with the policy
			result, err := RunEpisode(cfg, name, NewPolicy(name, 42), nil)

			// THEN every passenger was released exactly once
			require.NoError(t, err)
			assert.Equal(t, cfg.TotalSeats(), result.Decisions)
			assert.Len(t, result.Releases, cfg.TotalSeats())
			perRow := make(map[int]int)
			for _, row := range result.Releases {
				perRow[row]++
			}
			for row := 0; row < cfg.NumRows; row++ {
				assert.Equal(t, cfg.SeatsPerRow, perRow[row], "row %d", row)
			}
			// AND every passenger stowed luggage once
			assert.Equal(t, cfg.TotalSeats(), result.StowEvents)
			assert.NotEmpty(t, result.ID)
		})
	}
}

func TestRunEpisode_WithTrace_RecordsEveryDecision(t *testing.T) {
	// GIVEN a decision trace
	bt := trace.NewBoardingTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
	cfg := sim.NewBoardingConfig(3, 2)

	// WHEN an episode is run back to front
	result, err := RunEpisode(cfg, "back-to-front", BackToFront{}, bt)
	require.NoError(t, err)

	// THEN one record per decision, the last one terminal, rewards add up
	require.Len(t, bt.Decisions, result.Decisions)
	last := bt.Decisions[len(bt.Decisions)-1]
	assert.True(t, last.Terminated)
	assert.Equal(t, cfg.TotalSeats(), last.Seated)
	assert.Equal(t, 0, last.LobbyRemaining)
	summary := trace.Summarize(bt)
	assert.InDelta(t, result.TotalReward, summary.TotalReward, 1e-9)
	assert.Equal(t, result.Ticks, summary.FinalTick)
	require.NotNil(t, result.Metrics)
	assert.Equal(t, cfg.TotalSeats(), result.Metrics.SeatedCount)

	// AND the first release is a row-3 passenger
	assert.Equal(t, 2, bt.Decisions[0].Row)
	assert.Equal(t, sim.SeatID(3, 1, 2), bt.Decisions[0].SeatID)
}

func TestRunEpisode_SameSeed_Deterministic(t *testing.T) {
	cfg := sim.NewBoardingConfig(5, 4)
	cfg.BaggageFraction = 0.5
	cfg.Seed = 11

	a, err := RunEpisode(cfg, "random", NewPolicy("random", 3), nil)
	require.NoError(t, err)
	b, err := RunEpisode(cfg, "random", NewPolicy("random", 3), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Releases, b.Releases)
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.InDelta(t, a.TotalReward, b.TotalReward, 1e-9)
	assert.NotEqual(t, a.ID, b.ID, "episode ids must be unique")
}

func TestRunEpisode_InvalidConfig_ReturnsError(t *testing.T) {
	_, err := RunEpisode(sim.NewBoardingConfig(0, 3), "random", NewPolicy("random", 1), nil)
	assert.ErrorIs(t, err, sim.ErrInvalidConfiguration)
}
