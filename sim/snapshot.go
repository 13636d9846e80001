package sim

// AgentView is one passenger's presentation-facing state.
type AgentView struct {
	ID         int
	SeatRow    int
	SeatLetter string
	Row        int
	Col        int
	State      PassengerState
	Late       bool
}

// Snapshot is the only engine state exposed to the presentation layer: the
// tick counter (frozen once boarding completes) and every passenger's
// position and state, in boarding-queue order.
type Snapshot struct {
	Tick       int64
	Frozen     bool
	FinalTicks int64 // meaningful only when Frozen
	Agents     []AgentView
}

// Snapshot returns the current presentation view. The returned value shares
// no storage with the engine; callers cannot mutate engine state through it.
func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.Clock,
		Frozen:     s.frozen,
		FinalTicks: s.FinalTicks,
		Agents:     make([]AgentView, len(s.Roster)),
	}
	for i, p := range s.Roster {
		snap.Agents[i] = AgentView{
			ID:         p.ID,
			SeatRow:    p.SeatRow,
			SeatLetter: string(p.SeatLetter),
			Row:        p.Row,
			Col:        p.Col,
			State:      p.State,
			Late:       p.Late,
		}
	}
	return snap
}
