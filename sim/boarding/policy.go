// Package boarding generates the ordered passenger queue consumed by the
// simulation engine: six selectable seat-assignment policies plus the
// late-arrival scheduler that perturbs a generated queue. Generators are
// independent of simulation state and deterministic for a given RNG.
package boarding

import (
	"fmt"
	"strconv"
)

// Policy selects one of the seat-assignment orderings.
type Policy int

const (
	// PolicyRandom assigns seats fully at random.
	PolicyRandom Policy = iota
	// PolicyBackToFront boards rear rows first, random seats within a row.
	PolicyBackToFront
	// PolicyWindowToAisle boards rear rows first, windows before aisles
	// within each row (A, F, B, E, C, D).
	PolicyWindowToAisle
	// PolicySkipRows boards odd rows from the back, then even rows.
	PolicySkipRows
	// PolicyZones splits the cabin into back/middle/front zones, random
	// within each zone.
	PolicyZones
	// PolicyFourGroups boards four groups that each skip every other row and
	// alternate cabin sides.
	PolicyFourGroups
)

var policyNames = map[Policy]string{
	PolicyRandom:        "random",
	PolicyBackToFront:   "back-to-front",
	PolicyWindowToAisle: "window-to-aisle",
	PolicySkipRows:      "skip-rows",
	PolicyZones:         "zones",
	PolicyFourGroups:    "four-groups",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy accepts a policy name or its numeric index 0..5.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if s == name {
			return p, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		p := Policy(n)
		if _, ok := policyNames[p]; ok {
			return p, nil
		}
	}
	return 0, fmt.Errorf("boarding: unknown policy %q", s)
}
