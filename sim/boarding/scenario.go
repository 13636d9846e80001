package boarding

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boarding-sim/boarding-sim/sim"
)

// Scenario is a declarative simulation setup, loadable from YAML. It covers
// the same knobs as the CLI flags; a scenario file wins over flags when both
// are given.
type Scenario struct {
	Rows          int     `yaml:"rows"`
	Passengers    int     `yaml:"passengers,omitempty"` // 0 = full plane (rows x 6)
	Policy        string  `yaml:"policy"`
	LatePercent   float64 `yaml:"late_percent"`
	LateImmediate bool    `yaml:"late_immediate"`
	Seed          int64   `yaml:"seed"`
	MaxTicks      int64   `yaml:"max_ticks,omitempty"` // 0 = driver default
}

// LoadScenario reads and validates a Scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the scenario ranges. Input validation lives here, at the
// configuration layer; the engine itself treats bad input as a caller bug.
func (sc *Scenario) Validate() error {
	if sc.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", sc.Rows)
	}
	if sc.Passengers < 0 || sc.Passengers > sc.Rows*sim.SeatsPerRow {
		return fmt.Errorf("passengers must be in [0, %d] for %d rows, got %d",
			sc.Rows*sim.SeatsPerRow, sc.Rows, sc.Passengers)
	}
	if _, err := ParsePolicy(sc.Policy); err != nil {
		return err
	}
	if sc.LatePercent < 0 || sc.LatePercent > 100 {
		return fmt.Errorf("late_percent must be in [0, 100], got %v", sc.LatePercent)
	}
	if sc.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", sc.MaxTicks)
	}
	return nil
}

// PassengerCount resolves the effective queue size: an explicit passenger
// count, or a full plane when unset.
func (sc *Scenario) PassengerCount() int {
	if sc.Passengers > 0 {
		return sc.Passengers
	}
	return sc.Rows * sim.SeatsPerRow
}
