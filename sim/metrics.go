// Tracks simulation-wide boarding metrics.

package sim

import "fmt"

// Metrics aggregates statistics about the boarding run for final reporting.
// Useful for comparing policies and debugging behavior over time.
type Metrics struct {
	Passengers     int   // Number of passengers in the queue
	LatePassengers int   // Number of passengers flagged late
	TotalTicks     int64 // Frozen tick count once everyone is seated
	StowedBags     int   // Bags placed in overhead bins
	AbandonedBags  int   // Overhead bags that never found bin space
}

// NewMetrics creates a Metrics for a queue of the given size.
func NewMetrics(passengers int) *Metrics {
	return &Metrics{Passengers: passengers}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Boarding Metrics ===")
	fmt.Printf("Passengers           : %d\n", m.Passengers)
	fmt.Printf("Late passengers      : %d\n", m.LatePassengers)
	fmt.Printf("Total ticks to board : %d\n", m.TotalTicks)
	fmt.Printf("Bags stowed overhead : %d\n", m.StowedBags)
	fmt.Printf("Bags without bin     : %d\n", m.AbandonedBags)
	if m.Passengers > 0 {
		fmt.Printf("Ticks per passenger  : %.2f\n", float64(m.TotalTicks)/float64(m.Passengers))
	}
}
