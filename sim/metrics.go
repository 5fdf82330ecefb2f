// Tracks episode-wide boarding statistics such as decisions taken,
// ticks elapsed, accumulated reward and aisle congestion.

package sim

import "fmt"

// Metrics aggregates statistics about one boarding episode
// for final reporting. Reset by BoardingSimulation.Reset.
type Metrics struct {
	Decisions       int     // Number of row releases (Step calls that succeeded)
	Ticks           int64   // Number of assignment+advance ticks run
	TotalReward     float64 // Sum of per-tick rewards
	StowEvents      int     // Passengers that stopped to stow luggage
	PeakWaiting     int     // Max number of simultaneously WAITING passengers
	PeakAisleLength int     // Max number of slots the aisle held after compaction
	SeatedCount     int     // Occupied seats at the last tick
}

// NewMetrics returns zeroed episode metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordTick(aisle *Aisle, seated int, reward float64) {
	m.Ticks++
	m.TotalReward += reward
	m.SeatedCount = seated
	m.PeakWaiting = max(m.PeakWaiting, aisle.Count(StatusWaiting))
	m.PeakAisleLength = max(m.PeakAisleLength, aisle.Len())
}

// Print displays aggregated metrics at the end of the episode.
func (m *Metrics) Print() {
	fmt.Println("=== Boarding Metrics ===")
	fmt.Printf("Decisions            : %d\n", m.Decisions)
	fmt.Printf("Ticks                : %d\n", m.Ticks)
	fmt.Printf("Seated Passengers    : %d\n", m.SeatedCount)
	fmt.Printf("Total Reward         : %.2f\n", m.TotalReward)
	if m.Ticks > 0 {
		fmt.Printf("Average Tick Reward  : %.2f\n", m.TotalReward/float64(m.Ticks))
	}
	fmt.Printf("Stow Events          : %d\n", m.StowEvents)
	fmt.Printf("Peak Waiting         : %d passengers\n", m.PeakWaiting)
	fmt.Printf("Peak Aisle Length    : %d slots\n", m.PeakAisleLength)
}
