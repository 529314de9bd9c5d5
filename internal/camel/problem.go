package camel

import (
	"errors"
	"fmt"
)

// MaxAmount is the largest banana count the packed pile encoding can hold.
const MaxAmount = 1<<16 - 1

// Problem fixes the parameters of one solver run. All three values are
// immutable for the run's lifetime; Distance in particular bounds the size
// of every pile vector.
type Problem struct {
	Distance int // Number of road positions; start at 0, market at Distance-1
	Capacity int // Most bananas Cammy can carry at once
	Bananas  int // Bananas available at the start
}

// Validate reports whether the parameters describe a solvable instance.
func (p Problem) Validate() error {
	switch {
	case p.Distance < 1:
		return errors.New("distance must be at least 1")
	case p.Capacity < 0:
		return errors.New("capacity must not be negative")
	case p.Bananas < 0:
		return errors.New("bananas must not be negative")
	case p.Bananas > MaxAmount:
		return fmt.Errorf("bananas must not exceed %d", MaxAmount)
	case p.Capacity > MaxAmount:
		return fmt.Errorf("capacity must not exceed %d", MaxAmount)
	}
	return nil
}

// Market returns the position bananas must reach to count as delivered.
func (p Problem) Market() int {
	return p.Distance - 1
}

// MaxBranch returns an upper bound on the number of successors of any
// state: two moves times Capacity+1 drop choices each.
func (p Problem) MaxBranch() int {
	return 2 * (p.Capacity + 1)
}

// Start builds the initial state: Cammy at position 0 carrying as much as
// she can, with the remaining bananas cached in the pile at her feet.
func (p Problem) Start() State {
	held := p.Bananas
	if held > p.Capacity {
		held = p.Capacity
	}
	piles := NewPiles(p.Distance).Add(0, p.Bananas-held)
	return State{
		Key:  Key{X: 0, Piles: piles},
		Held: held,
	}
}
