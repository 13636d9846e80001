// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Simulator owns the cabin state and advances it one tick at a time. It is
// logically single-threaded and fully deterministic: an external driver (the
// presentation layer, or the CLI loop in cmd/) calls Tick at whatever cadence
// it likes and reads Snapshot between calls. Correctness never depends on
// wall-clock timing, only on tick boundaries.
type Simulator struct {
	numRows int

	// Bins is the shared overhead-bin resource. Mutated exactly once per
	// passenger per stow event, always from within the tick loop.
	Bins *Bins

	// Roster holds every passenger in boarding-queue order (ascending
	// QueueIndex). The simulator exclusively mutates passenger fields;
	// external callers read them through Snapshot.
	Roster []*Passenger

	// active is the set of passengers admitted to the tick loop and not yet
	// seated. Seated passengers are pruned at the end of each tick.
	active []*Passenger

	// Clock counts elapsed ticks. FinalTicks freezes the count once every
	// passenger is seated.
	Clock      int64
	FinalTicks int64
	frozen     bool

	Metrics *Metrics
}

// NewSimulator creates a simulator for a cabin with numRows rows and the
// given boarding queue. The roster must be ordered by QueueIndex.
func NewSimulator(numRows int, roster []*Passenger) *Simulator {
	s := &Simulator{
		numRows: numRows,
		Bins:    NewBins(numRows),
		Roster:  roster,
		Metrics: NewMetrics(len(roster)),
	}
	for _, p := range roster {
		if p.Late {
			s.Metrics.LatePassengers++
		}
	}
	return s
}

// Rows implements WorldView.
func (s *Simulator) Rows() int {
	return s.numRows
}

// OccupantAt implements WorldView: any not-yet-seated passenger blocks its
// cell, and a seated passenger blocks only while parked on the aisle column.
// Seated passengers in seat columns are handled by SeatedAt instead.
func (s *Simulator) OccupantAt(row, col int) *Passenger {
	for _, p := range s.Roster {
		if p.Row != row || p.Col != col {
			continue
		}
		if p.State != StateDone || col == AisleCol {
			return p
		}
	}
	return nil
}

// SeatedAt implements WorldView.
func (s *Simulator) SeatedAt(row, col int) *Passenger {
	if col == AisleCol {
		return nil
	}
	for _, p := range s.Roster {
		if p.State == StateDone && p.Row == row && p.Col == col {
			return p
		}
	}
	return nil
}

// QueuedAhead implements WorldView.
func (s *Simulator) QueuedAhead(queueIndex int) bool {
	for _, p := range s.active {
		if p.State == StateQueued && p.QueueIndex < queueIndex {
			return true
		}
	}
	return false
}

// HasBinCapacity implements WorldView.
func (s *Simulator) HasBinCapacity(row, bags int) bool {
	return s.Bins.HasCapacity(row, bags)
}

func (s *Simulator) allDone() bool {
	for _, p := range s.Roster {
		if p.State != StateDone {
			return false
		}
	}
	return true
}

func (s *Simulator) isActive(p *Passenger) bool {
	for _, q := range s.active {
		if q == p {
			return true
		}
	}
	return false
}

// Tick advances the simulation by one tick and reports whether boarding is
// complete. Once complete the tick count freezes and further calls are no-ops.
func (s *Simulator) Tick() bool {
	if s.frozen {
		return true
	}
	if s.allDone() {
		// Empty roster, or the caller kept ticking past completion.
		s.freeze()
		return true
	}

	s.Clock++

	// Admit every passenger still on their way. Idempotent.
	for _, p := range s.Roster {
		if p.State != StateDone && !s.isActive(p) {
			s.active = append(s.active, p)
		}
	}

	// Sub-step until movement settles or the bound is hit. Each passenger
	// moves at most one cell per tick; the extra rounds let chains of moves
	// behind a vacated cell resolve within the same tick.
	moved := make(map[*Passenger]bool)
	for i := 0; i < MaxSubSteps; i++ {
		if !s.subStep(moved) {
			break
		}
	}

	// Seated passengers leave the tick loop until the end of the run.
	remaining := s.active[:0]
	for _, p := range s.active {
		if p.State != StateDone {
			remaining = append(remaining, p)
		}
	}
	s.active = remaining

	if s.allDone() {
		s.freeze()
	}
	return s.frozen
}

func (s *Simulator) freeze() {
	s.frozen = true
	s.FinalTicks = s.Clock
	s.Metrics.TotalTicks = s.Clock
	logrus.Infof("[tick %07d] boarding complete", s.Clock)
}

// subStep runs one conflict-resolution round over every active passenger
// that has not yet moved this tick:
//
//  1. a first intent pass against an empty yield map (assume nobody vacates),
//  2. the yield map is built from the cells those intents vacate,
//  3. a final pass with the populated map, a one-hop lookahead that lets a
//     passenger move into a cell whose occupant is itself leaving
//     (chains longer than one hop settle in later sub-steps),
//  4. contested destinations go to the lowest queue index; losers keep every
//     field, countdowns included, and
//  5. all updates apply atomically against the pre-sub-step world.
//
// Returns whether any passenger changed position.
func (s *Simulator) subStep(moved map[*Passenger]bool) bool {
	var candidates []*Passenger
	for _, p := range s.active {
		if !moved[p] {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].QueueIndex < candidates[j].QueueIndex
	})

	// Intent pass.
	drafts := make([]Proposal, len(candidates))
	noYields := map[Cell]bool{}
	for i, p := range candidates {
		drafts[i] = p.Propose(s, noYields)
	}

	// Yield map: cells whose occupant committed to vacating.
	yield := make(map[Cell]bool)
	for i, p := range candidates {
		if drafts[i].Row != p.Row || drafts[i].Col != p.Col {
			yield[Cell{p.Row, p.Col}] = true
		}
	}

	// Final pass.
	finals := make([]Proposal, len(candidates))
	for i, p := range candidates {
		finals[i] = p.Propose(s, yield)
	}

	// Destination arbitration. Candidates are sorted by queue index, so the
	// first claimant of a cell is the winner; later claimants are forced to
	// hold in place, discarding their whole proposal.
	claimed := make(map[Cell]bool)
	for i, p := range candidates {
		dest := Cell{finals[i].Row, finals[i].Col}
		if claimed[dest] {
			finals[i] = p.hold()
			continue
		}
		claimed[dest] = true
	}

	// Commit. Both passes were computed before any mutation, so every
	// proposal observed the same pre-sub-step world.
	anyMoved := false
	for i, p := range candidates {
		plan := finals[i]
		prevRow, prevCol, prevState := p.Row, p.Col, p.State

		if plan.CommitStow {
			s.Bins.Stow(plan.StowRow, plan.StowBags)
			s.Metrics.StowedBags += plan.StowBags
			p.OverheadBags = 0
			logrus.Debugf("[tick %07d] passenger %d stowed %d bags at row %d",
				s.Clock, p.ID, plan.StowBags, plan.StowRow)
		}
		if plan.NegotiateID >= 0 {
			p.Passed[plan.NegotiateID] = struct{}{}
		}

		p.Row, p.Col = plan.Row, plan.Col
		p.State = plan.State
		p.StowTicks = plan.StowTicks
		p.WaitTicks = plan.WaitTicks

		if p.Row != prevRow || p.Col != prevCol {
			anyMoved = true
			moved[p] = true
		}
		if prevState == StateSeekingBin && p.State == StateMovingToSeat && p.OverheadBags > 0 {
			// Reached the end of the aisle with no bin space anywhere.
			s.Metrics.AbandonedBags += p.OverheadBags
			logrus.Debugf("[tick %07d] passenger %d found no bin space, seating with %d bags",
				s.Clock, p.ID, p.OverheadBags)
		}
	}

	s.assertCellExclusivity()
	return anyMoved
}

// assertCellExclusivity panics if two passengers genuinely share a cell after
// a commit. That is a defect in the arbitration protocol, never a recoverable
// runtime condition. Seated passengers in seat columns are passable and
// exempt, as is the shared boarding queue at the entrance row.
func (s *Simulator) assertCellExclusivity() {
	occupied := make(map[Cell]*Passenger)
	for _, p := range s.Roster {
		if p.Row < 0 {
			continue
		}
		if p.State == StateDone && p.Col != AisleCol {
			continue
		}
		c := Cell{p.Row, p.Col}
		if q, ok := occupied[c]; ok {
			panic(fmt.Sprintf("sim: cell (%d,%d) occupied by both passenger %d and passenger %d",
				c.Row, c.Col, q.ID, p.ID))
		}
		occupied[c] = p
	}
}
