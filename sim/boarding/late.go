package boarding

import (
	"math/rand"
	"sort"

	"github.com/boarding-sim/boarding-sim/sim"
)

// ApplyLate marks a fraction of the queue late and reorders it per the chosen
// arrival mode, renumbering queue indices 0..n-1. Passenger IDs and seat
// assignments are untouched; lateness is purely an ordering concern.
//
// Deferred mode (immediate=false): on-time passengers keep their relative
// order, late ones are shuffled among themselves and appended after them.
//
// Immediate mode: each late passenger draws a unique offset in [0, n+10] and
// the queue is re-sorted stably by original index + offset. Unique offsets
// guarantee no two late passengers collide on sort key; the stable sort keeps
// ties against on-time passengers deterministic.
//
// A late count of zero (percent too small) returns the queue unchanged.
func ApplyLate(queue []*sim.Passenger, percent float64, immediate bool, rng *rand.Rand) []*sim.Passenger {
	n := len(queue)
	lateCount := int(float64(n) * percent / 100.0)
	if lateCount <= 0 {
		return queue
	}

	for _, i := range rng.Perm(n)[:lateCount] {
		queue[i].Late = true
	}

	if !immediate {
		return deferLate(queue, rng)
	}
	return interleaveLate(queue, rng)
}

// deferLate sends every late passenger to the back, shuffled.
func deferLate(queue []*sim.Passenger, rng *rand.Rand) []*sim.Passenger {
	var onTime, late []*sim.Passenger
	for _, p := range queue {
		if p.Late {
			late = append(late, p)
		} else {
			onTime = append(onTime, p)
		}
	}
	rng.Shuffle(len(late), func(i, j int) {
		late[i], late[j] = late[j], late[i]
	})

	out := append(onTime, late...)
	for i, p := range out {
		p.QueueIndex = i
	}
	return out
}

// interleaveLate re-sorts the queue by original index plus a unique random
// offset per late passenger.
func interleaveLate(queue []*sim.Passenger, rng *rand.Rand) []*sim.Passenger {
	n := len(queue)
	maxOffset := n + 10
	used := make(map[int]bool)
	uniqueOffset := func() int {
		for {
			d := rng.Intn(maxOffset + 1)
			if !used[d] {
				used[d] = true
				return d
			}
		}
	}

	type keyed struct {
		key int
		p   *sim.Passenger
	}
	entries := make([]keyed, n)
	for i, p := range queue {
		key := p.QueueIndex
		if p.Late {
			key += uniqueOffset()
		}
		entries[i] = keyed{key, p}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	out := make([]*sim.Passenger, n)
	for i, e := range entries {
		e.p.QueueIndex = i
		out[i] = e.p
	}
	return out
}
