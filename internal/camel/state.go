package camel

import (
	"fmt"
	"strings"
)

// Piles is an immutable vector of per-position banana counts, packed as two
// little-endian bytes per position. The string representation keeps Key
// comparable (and hashable by Go maps) while letting the road length vary
// per run.
type Piles string

// NewPiles returns an all-zero pile vector with n positions.
func NewPiles(n int) Piles {
	return Piles(make([]byte, 2*n))
}

// PilesOf builds a pile vector from explicit counts. Mostly useful in
// tests and when decoding external input.
func PilesOf(counts ...int) Piles {
	b := make([]byte, 2*len(counts))
	for i, c := range counts {
		putCount(b, i, c)
	}
	return Piles(b)
}

// Len returns the number of positions.
func (p Piles) Len() int {
	return len(p) / 2
}

// At returns the banana count at position i.
func (p Piles) At(i int) int {
	return int(p[2*i]) | int(p[2*i+1])<<8
}

// Add returns a copy of p with the count at position i adjusted by delta.
// The result must stay within [0, MaxAmount]; anything else is a defect in
// the caller and panics.
func (p Piles) Add(i, delta int) Piles {
	c := p.At(i) + delta
	if c < 0 || c > MaxAmount {
		panic(fmt.Sprintf("pile %d out of range: %d%+d", i, p.At(i), delta))
	}
	b := []byte(p)
	putCount(b, i, c)
	return Piles(b)
}

// Counts unpacks the vector into a plain slice.
func (p Piles) Counts() []int {
	counts := make([]int, p.Len())
	for i := range counts {
		counts[i] = p.At(i)
	}
	return counts
}

// Total returns the number of bananas on the ground.
func (p Piles) Total() int {
	total := 0
	for i := 0; i < p.Len(); i++ {
		total += p.At(i)
	}
	return total
}

func (p Piles) String() string {
	parts := make([]string, p.Len())
	for i := range parts {
		parts[i] = fmt.Sprintf("%d", p.At(i))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func putCount(b []byte, i, c int) {
	b[2*i] = byte(c)
	b[2*i+1] = byte(c >> 8)
}

// Key identifies a node of the search graph independent of how it was
// reached and of the carried amount. See the package documentation for why
// Held is excluded.
type Key struct {
	Piles Piles // Bananas cached on the ground, one slot per position
	X     int   // Cammy's position
}

func (k Key) String() string {
	return fmt.Sprintf("x=%d piles=%s", k.X, k.Piles)
}

// State is a full search node: a canonical Key plus the carried amount.
type State struct {
	Key  Key
	Held int
}

// Total returns the bananas still in play: carried plus cached. Every
// transition reduces it by exactly one.
func (s State) Total() int {
	return s.Held + s.Key.Piles.Total()
}

func (s State) String() string {
	return fmt.Sprintf("%s held=%d", s.Key, s.Held)
}

// Successors appends every state reachable from s in one transition to buf
// and returns the extended slice. buf is truncated first so callers can
// reuse one buffer across calls; its capacity never needs to exceed
// Problem.MaxBranch().
//
// A transition is: move one position (forward preferred first, both
// requiring a carried banana to eat and a destination on the road), greedily
// pick up as much of the destination pile as capacity allows, then drop any
// amount from 0 to the full load back onto that pile.
func (p Problem) Successors(s State, buf []State) []State {
	buf = buf[:0]
	if s.Held == 0 {
		return buf
	}
	for _, next := range [2]int{s.Key.X + 1, s.Key.X - 1} {
		if next < 0 || next >= p.Distance {
			continue
		}
		held := s.Held - 1

		// Greedy maximal pickup at the destination. There is no partial
		// pickup choice: dropping afterwards subsumes it.
		ground := s.Key.Piles.At(next)
		take := p.Capacity - held
		if take > ground {
			take = ground
		}
		held += take
		ground -= take

		base := []byte(s.Key.Piles)
		for drop := 0; drop <= held; drop++ {
			piles := make([]byte, len(base))
			copy(piles, base)
			putCount(piles, next, ground+drop)
			buf = append(buf, State{
				Key:  Key{X: next, Piles: Piles(piles)},
				Held: held - drop,
			})
		}
	}
	return buf
}
