// Package testutil provides shared test infrastructure for the boarding
// simulator: golden episode types and assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one fully specified episode and its expected outcome.
type GoldenTestCase struct {
	Name            string        `json:"name"`
	Policy          string        `json:"policy"`
	NumRows         int           `json:"num_rows"`
	SeatsPerRow     int           `json:"seats_per_row"`
	BaggageFraction float64       `json:"baggage_fraction"`
	Seed            int64         `json:"seed"`
	Metrics         GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected metrics of a golden episode.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	Decisions       int   `json:"decisions"`
	Ticks           int64 `json:"ticks"`
	StowEvents      int   `json:"stow_events"`
	PeakWaiting     int   `json:"peak_waiting"`
	PeakAisleLength int   `json:"peak_aisle_length"`
	Releases        []int `json:"releases"`

	// Sum of per-tick rewards, compared with a tolerance
	TotalReward float64 `json:"total_reward"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
