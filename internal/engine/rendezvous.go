package engine

import (
	"sync"
	"sync/atomic"
)

// rendezvous is the round coordinator shared by reference across all
// workers: a cyclic barrier fused with the distributed termination vote
// and the post-termination cleanup handshake.
//
// There is no coordinator goroutine. The last worker to arrive in each
// round performs the coordinator duties inline while it already holds the
// mutex.
type rendezvous struct {
	mu      sync.Mutex
	cond    *sync.Cond
	workers int // Total worker count W, fixed for the run

	// arrived counts arrivals cumulatively across all rounds; round r is
	// complete when it reaches (r+1)*workers. Guarded by mu.
	arrived int

	// rounds is the number of completed rounds, for final reporting.
	// Guarded by mu.
	rounds int

	// stopped latches once a round ends with a unanimous stop vote.
	// Guarded by mu.
	stopped bool

	// votes counts workers whose frontier was empty when the current round
	// began. Cast with an atomic add outside the mutex; read and reset by
	// the last arriver under the mutex, whose acquisition guarantees every
	// vote cast earlier in the round is visible before the decision.
	votes atomic.Int64

	// cleanup elects the worker that performs once-only finalization after
	// termination.
	cleanup atomic.Int64
}

func newRendezvous(workers int) *rendezvous {
	r := &rendezvous{workers: workers}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// castVote registers that the calling worker had nothing to expand this
// round. Each worker casts at most one vote per round; votes are cleared
// between rounds unless they were unanimous.
func (r *rendezvous) castVote() {
	r.votes.Add(1)
}

// arrive blocks until every worker has finished the given round, then
// reports whether the search has terminated. Each worker must call it
// exactly once per round, after its receive phase.
//
// The worker whose arrival completes the round is the last arriver: with
// all votes for the round guaranteed visible, it either latches
// termination (unanimous vote) or resets the vote counter so stale votes
// from this round cannot combine with votes from a later one.
func (r *rendezvous) arrive(round int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.arrived++
	target := (round + 1) * r.workers
	if r.arrived == target {
		if int(r.votes.Load()) == r.workers {
			r.stopped = true
		} else {
			r.votes.Store(0)
		}
		r.rounds = round + 1
		r.cond.Broadcast()
		return r.stopped
	}
	for r.arrived < target {
		r.cond.Wait()
	}
	return r.stopped
}

// finish is the cleanup handshake, called once per worker after
// termination. It reports true for exactly one caller, the one that
// should perform once-only finalization.
func (r *rendezvous) finish() bool {
	return r.cleanup.Add(1) == int64(r.workers)
}

// roundCount returns the number of completed rounds.
func (r *rendezvous) roundCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rounds
}
