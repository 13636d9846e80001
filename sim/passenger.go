// Defines the Passenger struct that models an individual passenger in the
// simulation, and its pure transition function Propose. Passengers progress
// queued -> walking -> (stowing | seeking_bin) -> moving_to_seat -> done.

package sim

import "fmt"

// PassengerState represents the lifecycle state of a passenger.
type PassengerState string

const (
	// StateQueued: waiting outside the cabin door at the entrance row.
	StateQueued PassengerState = "queued"
	// StateWalking: walking down the aisle toward the assigned seat row.
	StateWalking PassengerState = "walking"
	// StateStowing: placing bags overhead; takes StowDurationTicks.
	StateStowing PassengerState = "stowing"
	// StateSeekingBin: the seat row's bins were full; walking on looking for space.
	StateSeekingBin PassengerState = "seeking_bin"
	// StateMovingToSeat: stepping from the aisle to the target seat column.
	StateMovingToSeat PassengerState = "moving_to_seat"
	// StateDone: seated. Terminal.
	StateDone PassengerState = "done"
)

// Passenger models a single passenger's trip from the boarding queue to a
// seat. Identity fields are fixed at queue construction; the Simulator
// exclusively owns and mutates the position and lifecycle fields.
type Passenger struct {
	ID           int  // stable identifier, assigned at generation time
	SeatRow      int  // assigned seat row
	SeatLetter   byte // assigned seat letter, 'A'..'F'
	TargetCol    int  // grid column of the assigned seat
	Bags         int  // total carry-on bags
	OverheadBags int  // bags needing bin space: all but one carry-on
	QueueIndex   int  // boarding-order priority; the sole tie-breaker
	Late         bool // arrived late per the late-arrival scheduler

	Row       int
	Col       int
	State     PassengerState
	StowTicks int // remaining stow countdown
	WaitTicks int // countdown spent squeezing past a seated neighbor
	// Passed records the IDs of seated passengers this one has already
	// negotiated its way past, so the squeeze cost is paid once per neighbor.
	Passed map[int]struct{}
}

// NewPassenger creates a passenger at the entrance queue.
func NewPassenger(id, seatRow int, seatLetter byte, bags, queueIndex int) *Passenger {
	return &Passenger{
		ID:           id,
		SeatRow:      seatRow,
		SeatLetter:   seatLetter,
		TargetCol:    SeatColumn(seatLetter),
		Bags:         bags,
		OverheadBags: max(bags-1, 0),
		QueueIndex:   queueIndex,
		Row:          EntranceRow,
		Col:          AisleCol,
		State:        StateQueued,
		Passed:       make(map[int]struct{}),
	}
}

func (p *Passenger) String() string {
	return fmt.Sprintf("Passenger(ID: %d, Seat: %d%c, State: %s, Pos: (%d,%d))",
		p.ID, p.SeatRow, p.SeatLetter, p.State, p.Row, p.Col)
}

// WorldView is the read-only neighborhood snapshot a passenger consults when
// proposing its next state. The Simulator implements it; tests substitute
// fakes.
type WorldView interface {
	// Rows returns the cabin row count.
	Rows() int
	// OccupantAt returns the blocking occupant of a cell: any passenger not
	// yet seated, or a seated one still parked on the aisle column. Nil if
	// the cell is free to enter.
	OccupantAt(row, col int) *Passenger
	// SeatedAt returns the seated (done) occupant of a seat cell, if any.
	// Seated passengers are passable obstacles, not hard blocks.
	SeatedAt(row, col int) *Passenger
	// QueuedAhead reports whether a queued passenger with a strictly smaller
	// queue index is still waiting to enter.
	QueuedAhead(queueIndex int) bool
	// HasBinCapacity reports whether the row's overhead bins can take bags.
	HasBinCapacity(row, bags int) bool
}

// Proposal is the outcome of one Propose call: the complete set of mutable
// fields the passenger wants to hold at the end of the sub-step. The
// scheduler applies it atomically or discards it; Propose mutates nothing.
type Proposal struct {
	Row       int
	Col       int
	State     PassengerState
	StowTicks int
	WaitTicks int

	// CommitStow asks the scheduler to place StowBags into the bins of
	// StowRow when (and only when) the proposal is applied. Set exactly once,
	// in the proposal whose stow countdown reaches zero.
	CommitStow bool
	StowRow    int
	StowBags   int

	// NegotiateID names a seated occupant to record in Passed, or -1.
	NegotiateID int
}

// hold is the identity proposal: keep every mutable field as it is.
func (p *Passenger) hold() Proposal {
	return Proposal{
		Row:         p.Row,
		Col:         p.Col,
		State:       p.State,
		StowTicks:   p.StowTicks,
		WaitTicks:   p.WaitTicks,
		NegotiateID: -1,
	}
}

// Propose computes the passenger's intended next state from a read-only view
// of the world and the yield map: the set of cells whose occupants have
// already committed to vacating this sub-step. It is a pure function of its
// inputs; the Simulator decides whether the proposal wins its destination.
func (p *Passenger) Propose(w WorldView, yield map[Cell]bool) Proposal {
	plan := p.hold()

	switch p.State {
	case StateDone:
		return plan

	case StateQueued:
		// FIFO fairness: hold while anyone ahead of us is still queued.
		if w.QueuedAhead(p.QueueIndex) {
			return plan
		}
		entry := Cell{0, AisleCol}
		if w.OccupantAt(entry.Row, entry.Col) == nil || yield[entry] {
			plan.Row = entry.Row
			plan.State = StateWalking
		}
		return plan

	case StateWalking:
		if p.Row < p.SeatRow {
			next := Cell{p.Row + 1, AisleCol}
			if w.OccupantAt(next.Row, next.Col) == nil || yield[next] {
				plan.Row = next.Row
			}
			return plan
		}
		// Reached the seat row.
		if p.OverheadBags > 0 {
			if w.HasBinCapacity(p.Row, p.OverheadBags) {
				plan.State = StateStowing
				plan.StowTicks = StowDurationTicks
			} else {
				plan.State = StateSeekingBin
			}
		} else {
			plan.State = StateMovingToSeat
		}
		return plan

	case StateStowing:
		if p.StowTicks > 0 {
			plan.StowTicks = p.StowTicks - 1
			if plan.StowTicks == 0 {
				plan.State = StateMovingToSeat
				plan.CommitStow = true
				plan.StowRow = p.Row
				plan.StowBags = p.OverheadBags
			}
		}
		return plan

	case StateSeekingBin:
		if p.Row >= w.Rows()-1 {
			// End of the aisle, no space anywhere: seat without stowing.
			plan.State = StateMovingToSeat
			return plan
		}
		next := Cell{p.Row + 1, AisleCol}
		if w.OccupantAt(next.Row, next.Col) == nil || yield[next] {
			plan.Row = next.Row
			if w.HasBinCapacity(next.Row, p.OverheadBags) {
				plan.State = StateStowing
				plan.StowTicks = StowDurationTicks
			}
		}
		return plan

	case StateMovingToSeat:
		if p.WaitTicks > 0 {
			plan.WaitTicks = p.WaitTicks - 1
			return plan
		}
		if p.Col == p.TargetCol {
			plan.State = StateDone
			return plan
		}
		step := 1
		if p.Col > p.TargetCol {
			step = -1
		}
		next := Cell{p.Row, p.Col + step}
		if occ := w.OccupantAt(next.Row, next.Col); occ != nil {
			if yield[next] {
				plan.Col = next.Col
			}
			return plan
		}
		if seated := w.SeatedAt(next.Row, next.Col); seated != nil {
			if _, ok := p.Passed[seated.ID]; !ok {
				// Squeeze past a seated neighbor: pause once, remember them.
				plan.WaitTicks = 1
				plan.NegotiateID = seated.ID
				return plan
			}
		}
		plan.Col = next.Col
		return plan
	}

	return plan
}
