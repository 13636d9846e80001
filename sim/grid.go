package sim

import "fmt"

// Cabin geometry. The grid is numRows x NumCols with a single aisle down the
// middle; row -1 is the boarding queue outside the cabin door.
const (
	// NumCols is the cabin width: three seats, the aisle, three seats.
	NumCols = 7

	// AisleCol is the aisle column. It is never a seat.
	AisleCol = 3

	// EntranceRow is the virtual row where passengers queue before entering.
	EntranceRow = -1

	// SeatsPerRow is the number of seats in a full row.
	SeatsPerRow = 6

	// PerSeatBinCapacity is how many bags fit in the overhead bin slot above
	// one seat. A row's total capacity is SeatsPerRow times this.
	PerSeatBinCapacity = 2

	// MaxBags is the most bags a passenger can carry on. All but one of them
	// need overhead stowage.
	MaxBags = 3

	// StowDurationTicks is the countdown a passenger runs while placing bags
	// in an overhead bin.
	StowDurationTicks = 2

	// MaxSubSteps bounds the conflict-resolution rounds within a single tick.
	MaxSubSteps = 10
)

// SeatLetters lists the seat letters of a row, left window to right window.
var SeatLetters = []byte{'A', 'B', 'C', 'D', 'E', 'F'}

// seatColumns maps a seat letter to its grid column. A,B,C sit left of the
// aisle and D,E,F right of it.
var seatColumns = map[byte]int{'A': 0, 'B': 1, 'C': 2, 'D': 4, 'E': 5, 'F': 6}

// SeatColumn returns the grid column for a seat letter.
func SeatColumn(letter byte) int {
	col, ok := seatColumns[letter]
	if !ok {
		panic(fmt.Sprintf("sim: invalid seat letter %q", letter))
	}
	return col
}

// Cell identifies one grid position.
type Cell struct {
	Row int
	Col int
}
