// Package engine implements the parallel breadth-first search that
// explores the banana-relay state graph and finds the optimal delivery.
//
// # Architecture
//
// The search runs on W long-lived worker goroutines that cooperate in
// lockstep rounds, one round per BFS depth level:
//
//	┌────────────────────────────────────────────────────────┐
//	│                       ENGINE                           │
//	├────────────────────────────────────────────────────────┤
//	│                                                        │
//	│  worker 0          worker 1              worker W-1    │
//	│  ┌────────┐        ┌────────┐            ┌────────┐    │
//	│  │frontier│        │frontier│    ...     │frontier│    │
//	│  │ shard 0│        │ shard 1│            │shard W-1│   │
//	│  └───┬────┘        └───┬────┘            └───┬────┘    │
//	│      │    per-round batches (capacity-1      │         │
//	│      └────────── channels, W×W mesh) ────────┘         │
//	│                        │                               │
//	│              ┌─────────▼─────────┐                     │
//	│              │    rendezvous     │                     │
//	│              │  barrier + stop   │                     │
//	│              │  vote + cleanup   │                     │
//	│              └───────────────────┘                     │
//	│                                                        │
//	└────────────────────────────────────────────────────────┘
//
// Each round a worker expands its local frontier through the transition
// model, routes every successor to the shard that owns its canonical key
// (uniformly, including successors it owns itself), receives exactly one
// batch from every peer, inserts the arrivals into its own shard to form
// the next frontier, and then arrives at the rendezvous barrier. No worker
// starts round r+1 until every worker has finished round r.
//
// # Termination
//
// A worker whose frontier is empty when a round begins casts a stop vote.
// The last worker to arrive at the barrier inspects the vote count under
// the barrier's mutex (which makes all votes cast earlier in the round
// visible to it): a unanimous count latches global termination, anything
// less resets the votes so a stale quorum can never assemble across
// different rounds. After termination each worker hands its shard and its
// local best-solution record to the engine; a cleanup counter elects one
// worker to log the final round tally.
//
// # Failure model
//
// The run has no recoverable error class. A violation of the monotonic
// first-discovery invariant or of the round-tagged messaging protocol is a
// programming defect and aborts the whole process; all workers succeed
// together or the run is void. There is likewise no cancellation or
// deadline: the search runs to unanimous termination.
package engine
