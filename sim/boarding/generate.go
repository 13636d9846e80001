package boarding

import (
	"fmt"
	"math/rand"

	"github.com/boarding-sim/boarding-sim/sim"
)

// seat is a (row, letter) pair produced by a policy ordering.
type seat struct {
	row    int
	letter byte
}

// Generate produces the boarding queue for a policy: n passengers with
// injective seat assignments and queue indices 0..n-1, bag counts drawn
// uniformly from 1..MaxBags. Passenger IDs equal the initial queue index and
// stay stable even if the late-arrival scheduler reorders the queue later.
// Deterministic given the same rng state.
func Generate(policy Policy, rows, n int, rng *rand.Rand) ([]*sim.Passenger, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("boarding: rows must be positive, got %d", rows)
	}
	if n < 0 || n > rows*sim.SeatsPerRow {
		return nil, fmt.Errorf("boarding: passenger count %d out of range for %d rows", n, rows)
	}

	var seats []seat
	switch policy {
	case PolicyRandom:
		seats = randomSeats(rows, rng)
	case PolicyBackToFront:
		seats = backToFrontSeats(rows, rng)
	case PolicyWindowToAisle:
		seats = windowToAisleSeats(rows)
	case PolicySkipRows:
		seats = skipRowsSeats(rows, rng)
	case PolicyZones:
		seats = zoneSeats(rows, rng)
	case PolicyFourGroups:
		seats = fourGroupSeats(rows, rng)
	default:
		return nil, fmt.Errorf("boarding: unknown policy %d", int(policy))
	}

	seats = seats[:n]
	queue := make([]*sim.Passenger, n)
	for i, st := range seats {
		bags := 1 + rng.Intn(sim.MaxBags)
		queue[i] = sim.NewPassenger(i, st.row, st.letter, bags, i)
	}
	return queue, nil
}

// randomSeats gathers every seat and shuffles the lot.
func randomSeats(rows int, rng *rand.Rand) []seat {
	seats := allSeatsRowMajor(rows)
	rng.Shuffle(len(seats), func(i, j int) {
		seats[i], seats[j] = seats[j], seats[i]
	})
	return seats
}

// backToFrontSeats walks rows rear to front, shuffling letters within a row.
func backToFrontSeats(rows int, rng *rand.Rand) []seat {
	var seats []seat
	for r := rows - 1; r >= 0; r-- {
		seats = append(seats, shuffledRow(r, rng)...)
	}
	return seats
}

// windowToAisleOrder fixes the within-row boarding order for window-to-aisle:
// both windows, both middles, both aisles.
var windowToAisleOrder = []byte{'A', 'F', 'B', 'E', 'C', 'D'}

func windowToAisleSeats(rows int) []seat {
	var seats []seat
	for r := rows - 1; r >= 0; r-- {
		for _, l := range windowToAisleOrder {
			seats = append(seats, seat{r, l})
		}
	}
	return seats
}

// skipRowsSeats boards odd rows rear to front, then even rows rear to front.
func skipRowsSeats(rows int, rng *rand.Rand) []seat {
	var seats []seat
	for r := rows - 1; r >= 0; r-- {
		if r%2 == 1 {
			seats = append(seats, shuffledRow(r, rng)...)
		}
	}
	for r := rows - 1; r >= 0; r-- {
		if r%2 == 0 {
			seats = append(seats, shuffledRow(r, rng)...)
		}
	}
	return seats
}

// zoneSeats splits the rows into three zones, rear first, and shuffles seats
// within each zone. Remainder rows (rows not divisible by 3) land in the
// front zone.
func zoneSeats(rows int, rng *rand.Rand) []seat {
	rowsDesc := make([]int, rows)
	for i := range rowsDesc {
		rowsDesc[i] = rows - 1 - i
	}
	zoneSize := rows / 3

	var seats []seat
	bounds := []int{0, zoneSize, 2 * zoneSize, rows}
	for z := 0; z < 3; z++ {
		var zone []seat
		for _, r := range rowsDesc[bounds[z]:bounds[z+1]] {
			for _, l := range sim.SeatLetters {
				zone = append(zone, seat{r, l})
			}
		}
		rng.Shuffle(len(zone), func(i, j int) {
			zone[i], zone[j] = zone[j], zone[i]
		})
		seats = append(seats, zone...)
	}
	return seats
}

// fourGroupSeats builds four boarding groups that each cover every other row
// on alternating cabin sides, starting from the back.
func fourGroupSeats(rows int, rng *rand.Rand) []seat {
	lastRow := rows - 1
	var seats []seat
	seats = append(seats, sideGroup(lastRow, true, rng)...)
	seats = append(seats, sideGroup(lastRow, false, rng)...)
	seats = append(seats, sideGroup(lastRow-1, true, rng)...)
	seats = append(seats, sideGroup(lastRow-1, false, rng)...)
	return seats
}

var (
	leftLetters  = []byte{'A', 'B', 'C'}
	rightLetters = []byte{'D', 'E', 'F'}
)

// sideGroup collects one group's seats: starting at startRow, every other row
// toward the front, switching cabin sides at each step.
func sideGroup(startRow int, left bool, rng *rand.Rand) []seat {
	var seats []seat
	for row := startRow; row >= 0; row -= 2 {
		letters := rightLetters
		if left {
			letters = leftLetters
		}
		side := append([]byte(nil), letters...)
		rng.Shuffle(len(side), func(i, j int) {
			side[i], side[j] = side[j], side[i]
		})
		for _, l := range side {
			seats = append(seats, seat{row, l})
		}
		left = !left
	}
	return seats
}

func allSeatsRowMajor(rows int) []seat {
	seats := make([]seat, 0, rows*sim.SeatsPerRow)
	for r := 0; r < rows; r++ {
		for _, l := range sim.SeatLetters {
			seats = append(seats, seat{r, l})
		}
	}
	return seats
}

func shuffledRow(row int, rng *rand.Rand) []seat {
	letters := append([]byte(nil), sim.SeatLetters...)
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	seats := make([]seat, len(letters))
	for i, l := range letters {
		seats[i] = seat{row, l}
	}
	return seats
}
