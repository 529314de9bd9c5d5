// Package camel defines the state space of the banana-relay problem: Cammy
// the camel starts at position 0 of a road with D positions and wants to
// deliver as many of her B bananas as possible to the market at position
// D-1. Every single-position move costs one banana, she can carry at most C
// bananas at a time, and she may cache bananas in piles on the ground and
// pick them up later.
//
// # State model
//
// A node of the search graph is a State:
//
//	State
//	├── Key          canonical identity (shared by all equivalent states)
//	│   ├── X        Cammy's position, 0 <= X < Distance
//	│   └── Piles    bananas cached on the ground, one slot per position
//	└── Held         bananas currently carried, 0 <= Held <= Capacity
//
// The canonical Key deliberately excludes Held: because the search expands
// states in breadth-first round order and bananas are only ever consumed,
// the first discovery of a Key always carries the maximum Held achievable
// for it. Two states with the same Key are therefore interchangeable for
// every purpose except reading off the delivered amount.
//
// # Transitions
//
// One transition is a move (forward or backward, consuming one carried
// banana), followed by a greedy maximal pickup from the destination pile,
// followed by a choice of how many bananas to drop back onto that pile.
// The drop choice enumerates every amount from 0 to the full carried load,
// so a single state has at most 2*(Capacity+1) successors. That bounded
// branching is why Successors materializes eagerly into a reusable buffer
// instead of yielding lazily.
//
// # Encoding
//
// Piles is a packed, immutable byte string (two little-endian bytes per
// position) so that Key is comparable and usable as a map key for any road
// length chosen at run time. All banana counts are bounded by MaxAmount to
// fit the packing.
package camel
