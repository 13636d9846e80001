package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runUntilDone drives Tick until boarding freezes or the bound is hit.
func runUntilDone(t *testing.T, s *Simulator, bound int) {
	t.Helper()
	for i := 0; i < bound; i++ {
		if s.Tick() {
			return
		}
	}
	t.Fatalf("boarding did not complete within %d ticks", bound)
}

func TestSingleRowFullBoarding(t *testing.T) {
	letters := []byte{'A', 'B', 'C', 'D', 'E', 'F'}
	roster := make([]*Passenger, len(letters))
	for i, l := range letters {
		roster[i] = NewPassenger(i, 0, l, 1, i)
	}
	s := NewSimulator(1, roster)

	runUntilDone(t, s, 200)

	snap := s.Snapshot()
	assert.True(t, snap.Frozen)
	assert.Greater(t, snap.FinalTicks, int64(0))
	for _, p := range roster {
		assert.Equal(t, StateDone, p.State)
		assert.Equal(t, p.TargetCol, p.Col)
		assert.Equal(t, 0, p.Row)
	}
}

func TestTickCountFreezesAfterCompletion(t *testing.T) {
	p := NewPassenger(0, 0, 'C', 1, 0)
	s := NewSimulator(1, []*Passenger{p})

	runUntilDone(t, s, 50)
	final := s.FinalTicks

	// Further ticks are no-ops: the frozen count never moves.
	for i := 0; i < 5; i++ {
		assert.True(t, s.Tick())
	}
	assert.Equal(t, final, s.FinalTicks)
	assert.Equal(t, final, s.Clock)
}

func TestEmptyRosterFreezesAtZero(t *testing.T) {
	s := NewSimulator(2, nil)
	assert.True(t, s.Tick())
	assert.Equal(t, int64(0), s.FinalTicks)
}

func TestDestinationCollisionLowestIndexWins(t *testing.T) {
	// Synthetic race: two passengers both proposing to step into the entry
	// cell (0,3) in the same sub-step. The FIFO rule prevents this from
	// arising out of the queue, so both are placed in walking state at the
	// entrance row by hand.
	p0 := NewPassenger(0, 1, 'A', 1, 0)
	p0.State = StateWalking
	p1 := NewPassenger(1, 1, 'F', 1, 1)
	p1.State = StateWalking

	s := NewSimulator(2, []*Passenger{p0, p1})
	s.active = []*Passenger{p0, p1}

	s.subStep(map[*Passenger]bool{})

	assert.Equal(t, 0, p0.Row)
	// The loser's whole proposal is discarded: position and state unchanged.
	assert.Equal(t, EntranceRow, p1.Row)
	assert.Equal(t, StateWalking, p1.State)
}

func TestCollisionLossDiscardsWholeProposal(t *testing.T) {
	// A losing passenger keeps every field, not just its position: here the
	// loser's winning-case proposal would have started a stow countdown.
	p0 := NewPassenger(0, 1, 'A', 1, 0)
	p0.State = StateWalking
	p1 := NewPassenger(1, 1, 'F', 3, 1)
	p1.State = StateSeekingBin // synthetic: seeking from the entrance row

	s := NewSimulator(2, []*Passenger{p0, p1})
	s.active = []*Passenger{p0, p1}

	s.subStep(map[*Passenger]bool{})

	// Both targeted (0,3); p0 won. p1's stow countdown never started.
	assert.Equal(t, 0, p0.Row)
	assert.Equal(t, EntranceRow, p1.Row)
	assert.Equal(t, StateSeekingBin, p1.State)
	assert.Equal(t, 0, p1.StowTicks)
}

func TestStowingCommitsExactlyOnce(t *testing.T) {
	p := NewPassenger(0, 0, 'A', 3, 0)
	p.State = StateStowing
	p.Row, p.Col = 0, AisleCol
	p.StowTicks = 2

	s := NewSimulator(1, []*Passenger{p})
	s.active = []*Passenger{p}
	moved := map[*Passenger]bool{}

	s.subStep(moved)
	assert.Equal(t, 1, p.StowTicks)
	assert.Equal(t, StateStowing, p.State)
	assert.Equal(t, 0, s.Bins.RowTotal(0))

	s.subStep(moved)
	assert.Equal(t, 0, p.StowTicks)
	assert.Equal(t, StateMovingToSeat, p.State)
	assert.Equal(t, 2, s.Bins.RowTotal(0))
	assert.Equal(t, 0, p.OverheadBags)

	// Moving toward the seat afterwards must not stow again.
	s.subStep(moved)
	assert.Equal(t, 2, s.Bins.RowTotal(0))
	assert.Equal(t, 2, s.Metrics.StowedBags)
}

func TestStowingPassengerNeverLosesPositionRace(t *testing.T) {
	// A stowing passenger holds its cell, so it can never be forced to drop
	// a countdown by losing a destination race, even to a smaller index.
	stower := NewPassenger(5, 1, 'A', 3, 5)
	stower.State = StateStowing
	stower.Row, stower.Col = 1, AisleCol
	stower.StowTicks = 1

	walker := NewPassenger(0, 3, 'F', 1, 0)
	walker.State = StateWalking
	walker.Row, walker.Col = 0, AisleCol

	s := NewSimulator(4, []*Passenger{stower, walker})
	s.active = []*Passenger{stower, walker}

	s.subStep(map[*Passenger]bool{})

	// The stow completed; the walker stayed blocked behind the stower.
	assert.Equal(t, StateMovingToSeat, stower.State)
	assert.Equal(t, 2, s.Bins.RowTotal(1))
	assert.Equal(t, 0, walker.Row)
}

func TestDoneOnAisleBlocksWalkers(t *testing.T) {
	// Synthetic: a seated passenger parked on the aisle is a hard block.
	parked := NewPassenger(9, 2, 'A', 1, 9)
	parked.State = StateDone
	parked.Row, parked.Col = 2, AisleCol

	walker := NewPassenger(0, 3, 'F', 1, 0)
	walker.State = StateWalking
	walker.Row, walker.Col = 1, AisleCol

	s := NewSimulator(4, []*Passenger{parked, walker})
	s.active = []*Passenger{walker}

	s.subStep(map[*Passenger]bool{})
	assert.Equal(t, 1, walker.Row)
}

func TestSqueezePastSeatedNeighbor(t *testing.T) {
	seated := NewPassenger(1, 0, 'B', 1, 1)
	seated.State = StateDone
	seated.Row, seated.Col = 0, 1

	mover := NewPassenger(0, 0, 'A', 1, 0)
	mover.State = StateMovingToSeat
	mover.Row, mover.Col = 0, 2

	s := NewSimulator(1, []*Passenger{mover, seated})
	s.active = []*Passenger{mover}
	moved := map[*Passenger]bool{}

	// First encounter: pause in place and remember the neighbor.
	s.subStep(moved)
	assert.Equal(t, 2, mover.Col)
	assert.Equal(t, 1, mover.WaitTicks)
	assert.Contains(t, mover.Passed, seated.ID)

	// Wait runs down, then the mover slips through to its own seat.
	s.subStep(moved)
	assert.Equal(t, 0, mover.WaitTicks)
	s.subStep(moved)
	assert.Equal(t, 1, mover.Col)
	s.subStep(map[*Passenger]bool{})
	assert.Equal(t, 0, mover.Col)
	s.subStep(map[*Passenger]bool{})
	assert.Equal(t, StateDone, mover.State)
}

func TestBinSearchStowsInFartherRow(t *testing.T) {
	p := NewPassenger(0, 0, 'A', 3, 0)
	s := NewSimulator(2, []*Passenger{p})
	s.Bins.Stow(0, 12) // the assigned row's bins are already full

	runUntilDone(t, s, 100)

	assert.Equal(t, StateDone, p.State)
	assert.Equal(t, 0, p.Col)
	assert.Equal(t, 1, p.Row) // seated where the bin search ended
	assert.Equal(t, 2, s.Bins.RowTotal(1))
	assert.Equal(t, 2, s.Metrics.StowedBags)
	assert.Equal(t, 0, s.Metrics.AbandonedBags)
}

func TestBinSearchGivesUpWhenEveryRowIsFull(t *testing.T) {
	p := NewPassenger(0, 0, 'A', 3, 0)
	s := NewSimulator(2, []*Passenger{p})
	s.Bins.Stow(0, 12)
	s.Bins.Stow(1, 12)

	runUntilDone(t, s, 100)

	assert.Equal(t, StateDone, p.State)
	assert.Equal(t, 0, p.Col)
	assert.Equal(t, 2, s.Metrics.AbandonedBags)
	assert.Equal(t, 12, s.Bins.RowTotal(0))
	assert.Equal(t, 12, s.Bins.RowTotal(1))
}

func TestSnapshotIsDetached(t *testing.T) {
	p := NewPassenger(0, 1, 'C', 1, 0)
	s := NewSimulator(2, []*Passenger{p})

	snap := s.Snapshot()
	require.Len(t, snap.Agents, 1)
	snap.Agents[0].Row = 99

	assert.Equal(t, EntranceRow, p.Row)
}

func TestQueueEntryIsFIFOByQueueIndex(t *testing.T) {
	// Three passengers; later indices must stay queued until all smaller
	// indices have entered, regardless of roster iteration order.
	a := NewPassenger(0, 2, 'A', 1, 0)
	b := NewPassenger(1, 2, 'F', 1, 1)
	c := NewPassenger(2, 1, 'C', 1, 2)
	s := NewSimulator(3, []*Passenger{a, b, c})

	s.Tick()
	assert.Equal(t, StateWalking, a.State)
	assert.Equal(t, StateQueued, b.State)
	assert.Equal(t, StateQueued, c.State)

	s.Tick()
	assert.Equal(t, StateWalking, b.State)
	assert.Equal(t, StateQueued, c.State)
}
