package camel

import (
	"testing"
)

// TestPiles tests the packed pile vector encoding
func TestPiles(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		counts := []int{0, 3, 65535, 42, 1}
		p := PilesOf(counts...)

		if p.Len() != 5 {
			t.Fatalf("Expected length 5, got %d", p.Len())
		}
		for i, want := range counts {
			if got := p.At(i); got != want {
				t.Errorf("At(%d) = %d, want %d", i, got, want)
			}
		}
		if got := p.Total(); got != 65581 {
			t.Errorf("Total() = %d, want 65581", got)
		}
	})

	t.Run("add is immutable", func(t *testing.T) {
		p := PilesOf(1, 2)
		q := p.Add(1, 3)

		if got := p.At(1); got != 2 {
			t.Errorf("Original modified: At(1) = %d, want 2", got)
		}
		if got := q.At(1); got != 5 {
			t.Errorf("Copy not adjusted: At(1) = %d, want 5", got)
		}
	})

	t.Run("new piles are zero", func(t *testing.T) {
		p := NewPiles(4)
		if p.Total() != 0 || p.Len() != 4 {
			t.Errorf("NewPiles(4) = %s", p)
		}
	})

	t.Run("negative count panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic on negative pile count")
			}
		}()
		PilesOf(1).Add(0, -2)
	})

	t.Run("keys are comparable", func(t *testing.T) {
		a := Key{X: 2, Piles: PilesOf(0, 1, 0)}
		b := Key{X: 2, Piles: PilesOf(0, 1, 0)}
		c := Key{X: 2, Piles: PilesOf(0, 0, 1)}

		if a != b {
			t.Error("Equal keys compare unequal")
		}
		if a == c {
			t.Error("Distinct keys compare equal")
		}
	})
}

// TestSuccessors tests one-step expansion of the transition model
func TestSuccessors(t *testing.T) {
	t.Run("empty handed means stuck", func(t *testing.T) {
		p := Problem{Distance: 4, Capacity: 5, Bananas: 5}
		s := State{Key: Key{X: 1, Piles: PilesOf(0, 0, 9, 0)}, Held: 0}

		if succs := p.Successors(s, nil); len(succs) != 0 {
			t.Errorf("Expected no successors, got %d", len(succs))
		}
	})

	t.Run("walls clip moves", func(t *testing.T) {
		p := Problem{Distance: 2, Capacity: 5, Bananas: 2}
		s := State{Key: Key{X: 0, Piles: PilesOf(0, 0)}, Held: 2}

		// Only forward is on the road; one banana eaten, drop 0 or 1.
		want := []State{
			{Key: Key{X: 1, Piles: PilesOf(0, 0)}, Held: 1},
			{Key: Key{X: 1, Piles: PilesOf(0, 1)}, Held: 0},
		}
		got := p.Successors(s, nil)
		assertStates(t, got, want)
	})

	t.Run("pickup is greedy and maximal", func(t *testing.T) {
		p := Problem{Distance: 2, Capacity: 3, Bananas: 4}
		s := State{Key: Key{X: 0, Piles: PilesOf(0, 2)}, Held: 2}

		// Move eats one, the whole pile of 2 fits under capacity 3, then
		// every drop amount branches.
		want := []State{
			{Key: Key{X: 1, Piles: PilesOf(0, 0)}, Held: 3},
			{Key: Key{X: 1, Piles: PilesOf(0, 1)}, Held: 2},
			{Key: Key{X: 1, Piles: PilesOf(0, 2)}, Held: 1},
			{Key: Key{X: 1, Piles: PilesOf(0, 3)}, Held: 0},
		}
		got := p.Successors(s, nil)
		assertStates(t, got, want)
	})

	t.Run("pickup clipped by capacity", func(t *testing.T) {
		p := Problem{Distance: 2, Capacity: 2, Bananas: 9}
		s := State{Key: Key{X: 0, Piles: PilesOf(0, 7)}, Held: 2}

		// Held drops to 1 after the move, so only one banana fits.
		want := []State{
			{Key: Key{X: 1, Piles: PilesOf(0, 6)}, Held: 2},
			{Key: Key{X: 1, Piles: PilesOf(0, 7)}, Held: 1},
			{Key: Key{X: 1, Piles: PilesOf(0, 8)}, Held: 0},
		}
		got := p.Successors(s, nil)
		assertStates(t, got, want)
	})

	t.Run("both directions from the middle", func(t *testing.T) {
		p := Problem{Distance: 3, Capacity: 2, Bananas: 4}
		s := State{Key: Key{X: 1, Piles: PilesOf(1, 0, 2)}, Held: 1}

		got := p.Successors(s, nil)
		// Forward: pick up both, 3 drop choices. Backward: pick up one,
		// 2 drop choices.
		want := []State{
			{Key: Key{X: 2, Piles: PilesOf(1, 0, 0)}, Held: 2},
			{Key: Key{X: 2, Piles: PilesOf(1, 0, 1)}, Held: 1},
			{Key: Key{X: 2, Piles: PilesOf(1, 0, 2)}, Held: 0},
			{Key: Key{X: 0, Piles: PilesOf(0, 0, 2)}, Held: 1},
			{Key: Key{X: 0, Piles: PilesOf(1, 0, 2)}, Held: 0},
		}
		assertStates(t, got, want)
	})

	t.Run("buffer is reused", func(t *testing.T) {
		p := Problem{Distance: 3, Capacity: 2, Bananas: 4}
		buf := make([]State, 0, p.MaxBranch())

		s := State{Key: Key{X: 0, Piles: PilesOf(0, 0, 0)}, Held: 2}
		buf = p.Successors(s, buf)
		if len(buf) == 0 {
			t.Fatal("Expected successors")
		}
		buf = p.Successors(State{Key: Key{X: 1, Piles: PilesOf(0, 0, 0)}, Held: 0}, buf)
		if len(buf) != 0 {
			t.Errorf("Expected truncated buffer, got %d entries", len(buf))
		}
	})
}

// TestTransitionInvariants tests the properties every successor must obey
func TestTransitionInvariants(t *testing.T) {
	p := Problem{Distance: 4, Capacity: 3, Bananas: 9}

	// Walk a couple of expansion levels from the start and check every
	// state produced along the way.
	frontier := []State{p.Start()}
	seen := 0
	for level := 0; level < 3; level++ {
		var next []State
		for _, s := range frontier {
			succs := p.Successors(s, nil)
			if len(succs) > p.MaxBranch() {
				t.Fatalf("Branching %d exceeds bound %d", len(succs), p.MaxBranch())
			}
			for _, succ := range succs {
				seen++
				if succ.Held < 0 || succ.Held > p.Capacity {
					t.Errorf("Held %d out of [0, %d] in %s", succ.Held, p.Capacity, succ)
				}
				for i := 0; i < succ.Key.Piles.Len(); i++ {
					if succ.Key.Piles.At(i) < 0 {
						t.Errorf("Negative pile in %s", succ)
					}
				}
				if succ.Total() != s.Total()-1 {
					t.Errorf("Total %d -> %d, want exactly one banana eaten", s.Total(), succ.Total())
				}
				if dx := succ.Key.X - s.Key.X; dx != 1 && dx != -1 {
					t.Errorf("Illegal move %d -> %d: there is no stay", s.Key.X, succ.Key.X)
				}
			}
			next = append(next, succs...)
		}
		frontier = next
	}
	if seen == 0 {
		t.Fatal("Walk expanded nothing")
	}
}

func assertStates(t *testing.T, got, want []State) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Got %d successors, want %d:\n got: %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Successor %d = %s, want %s", i, got[i], want[i])
		}
	}
}
