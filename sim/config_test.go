package sim

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boarding.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBoardingConfig_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, `
num_rows: 10
seats_per_row: 5
baggage_fraction: 0.75
seed: 7
reward:
  seated_weight: 2.0
  waiting_penalty: 0.25
  moving_penalty: 0.1
`)
	cfg, err := LoadBoardingConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.NumRows)
	assert.Equal(t, 5, cfg.SeatsPerRow)
	assert.Equal(t, 0.75, cfg.BaggageFraction)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, RewardWeights{SeatedWeight: 2.0, WaitingPenalty: 0.25, MovingPenalty: 0.1}, cfg.Reward)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.TotalSeats())
}

func TestLoadBoardingConfig_OmittedFieldsKeepDefaults(t *testing.T) {
	path := writeTempYAML(t, "num_rows: 3\nseats_per_row: 2\n")
	cfg, err := LoadBoardingConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.BaggageFraction)
	assert.Equal(t, DefaultRewardWeights(), cfg.Reward)
}

func TestLoadBoardingConfig_UnknownField_Rejected(t *testing.T) {
	// Typos must cause errors rather than silently using defaults
	path := writeTempYAML(t, "num_rows: 3\nseats_per_rows: 2\n")
	_, err := LoadBoardingConfig(path)
	assert.Error(t, err)
}

func TestLoadBoardingConfig_MissingFile(t *testing.T) {
	_, err := LoadBoardingConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBoardingConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BoardingConfig)
		wantErr bool
	}{
		{"defaults", func(c *BoardingConfig) {}, false},
		{"zero baggage", func(c *BoardingConfig) { c.BaggageFraction = 0 }, false},
		{"zero rows", func(c *BoardingConfig) { c.NumRows = 0 }, true},
		{"zero seats", func(c *BoardingConfig) { c.SeatsPerRow = 0 }, true},
		{"negative baggage", func(c *BoardingConfig) { c.BaggageFraction = -0.1 }, true},
		{"infinite penalty", func(c *BoardingConfig) { c.Reward.WaitingPenalty = math.Inf(1) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewBoardingConfig(4, 2)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

