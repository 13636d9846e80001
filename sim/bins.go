package sim

import "fmt"

// Bins tracks overhead bin occupancy, one bounded slot per seat position.
// Capacity is queried per row: a bag fits if the row's six slots have room
// for it, regardless of which slot ends up holding it.
type Bins struct {
	rows int
	bags [][]int // bags[row][col]; the aisle column stays zero
}

// NewBins creates empty overhead bins for a cabin with the given row count.
func NewBins(rows int) *Bins {
	b := &Bins{rows: rows, bags: make([][]int, rows)}
	for r := range b.bags {
		b.bags[r] = make([]int, NumCols)
	}
	return b
}

// RowTotal returns the number of bags stored across the row's bins.
func (b *Bins) RowTotal(row int) int {
	total := 0
	for col, n := range b.bags[row] {
		if col == AisleCol {
			continue
		}
		total += n
	}
	return total
}

// RowCapacity is the total number of bags a row's bins can hold.
func (b *Bins) RowCapacity() int {
	return SeatsPerRow * PerSeatBinCapacity
}

// HasCapacity reports whether bagsNeeded more bags fit in the row's bins.
// Pure query, no mutation.
func (b *Bins) HasCapacity(row, bagsNeeded int) bool {
	return b.RowTotal(row)+bagsNeeded <= b.RowCapacity()
}

// Stow places bags into the row's bins, filling seat columns left to right
// and skipping the aisle. Callers must have checked HasCapacity first;
// running out of slots here means the conflict-resolution protocol committed
// a stow it never reserved, so it panics rather than degrade silently.
func (b *Bins) Stow(row, bags int) {
	left := bags
	for col := 0; col < NumCols && left > 0; col++ {
		if col == AisleCol {
			continue
		}
		free := PerSeatBinCapacity - b.bags[row][col]
		if free <= 0 {
			continue
		}
		put := min(free, left)
		b.bags[row][col] += put
		left -= put
	}
	if left > 0 {
		panic(fmt.Sprintf("sim: stowed %d bags into row %d without capacity", bags, row))
	}
}
