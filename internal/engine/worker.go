package engine

import (
	"fmt"
	"log/slog"

	"github.com/matthew-mcallister/cammy/internal/camel"
	"github.com/matthew-mcallister/cammy/internal/visited"
)

// pair is one unit of cross-worker traffic: a newly generated successor
// together with the canonical key of the state that produced it.
type pair struct {
	prev  camel.Key
	state camel.State
}

// batch is one round's worth of pairs from one worker to one peer. Every
// worker sends exactly one batch (possibly empty) to every peer every
// round, so receivers can drain their inboxes unconditionally. The round
// tag exists purely to catch protocol bugs: two rounds' messages must
// never interleave.
type batch struct {
	round int
	pairs []pair
}

// workerResult is what each worker hands back after termination: its shard
// of the visited table and its local best-solution record.
type workerResult struct {
	shard  *visited.Shard
	record SolutionRecord
}

// worker owns one shard of the visited table and one slice of the search
// frontier. All of its state is private to its goroutine; the only shared
// structures it touches are the message channels and the rendezvous.
type worker struct {
	id      int
	problem camel.Problem
	shard   *visited.Shard
	sync    *rendezvous

	// recv[p] carries batches from peer p to this worker; send[p] carries
	// batches from this worker to peer p. Both have capacity 1: the
	// barrier guarantees at most one outstanding batch per edge, so sends
	// never block.
	recv []chan batch
	send []chan batch

	// frontier holds the states discovered last round, to expand this
	// round. staging accumulates outgoing pairs per destination shard and
	// succs is the reusable successor buffer; both avoid per-state
	// allocation in the hot loop.
	frontier []camel.State
	staging  [][]pair
	succs    []camel.State

	record  SolutionRecord
	logger  *slog.Logger
	metrics *Metrics
	results chan<- workerResult

	// lastDuplicates remembers the shard's duplicate count at the previous
	// metrics flush, so only the delta is added each round.
	lastDuplicates int
}

// run drives the worker through its round cycle until the rendezvous
// declares unanimous termination, then performs the cleanup handshake.
func (w *worker) run() {
	for round := 0; ; round++ {
		// The stop vote reflects the frontier as the round begins. It must
		// be cast before this worker can possibly reach the barrier, so
		// the last arriver counts a complete round's worth of votes.
		if len(w.frontier) == 0 {
			w.sync.castVote()
		}

		w.expand()
		w.flush(round)
		w.receive(round)

		w.logger.Debug("round complete",
			slog.Int("worker", w.id),
			slog.Int("round", round),
			slog.Int("frontier", len(w.frontier)),
			slog.Int("shard_size", w.shard.Len()))

		if w.sync.arrive(round) {
			break
		}
	}

	w.results <- workerResult{shard: w.shard, record: w.record}
	if w.sync.finish() {
		w.logger.Info("search terminated",
			slog.Int("rounds", w.sync.roundCount()))
	}
}

// expand generates the successors of every frontier state and stages each
// one for the shard that owns its canonical key. Routing is uniform: a
// successor this worker itself owns still goes through its own channel,
// which keeps the protocol identical on every edge.
func (w *worker) expand() {
	for _, s := range w.frontier {
		w.succs = w.problem.Successors(s, w.succs)
		for _, succ := range w.succs {
			dest := visited.ShardFor(succ.Key, len(w.send))
			w.staging[dest] = append(w.staging[dest], pair{prev: s.Key, state: succ})
		}
	}
}

// flush sends one round-tagged batch to every peer, empty or not. The
// staged slices are handed off wholesale, so staging starts fresh each
// round.
func (w *worker) flush(round int) {
	routed := 0
	for dest, pairs := range w.staging {
		w.send[dest] <- batch{round: round, pairs: pairs}
		routed += len(pairs)
		w.staging[dest] = nil
	}
	if w.metrics != nil && routed > 0 {
		w.metrics.MessagesRouted.Add(float64(routed))
	}
}

// receive drains exactly one batch from every peer (itself included) and
// inserts the arrivals into the owned shard. First-time insertions become
// the next round's frontier; arrivals at the market position update the
// local solution record. Blocking here until every peer's batch has
// arrived is expected: it is one of the two legal suspension points.
func (w *worker) receive(round int) {
	w.frontier = w.frontier[:0]
	market := w.problem.Market()
	for p := range w.recv {
		b := <-w.recv[p]
		if b.round != round {
			// Two rounds' messages on one edge can never interleave; if
			// they do the messaging protocol is broken and the run is
			// void.
			panic(fmt.Sprintf(
				"engine: worker %d got a round-%d batch from peer %d during round %d",
				w.id, b.round, p, round))
		}
		for i := range b.pairs {
			m := &b.pairs[i]
			if !w.shard.Insert(&m.prev, m.state) {
				continue
			}
			w.frontier = append(w.frontier, m.state)
			if w.metrics != nil {
				w.metrics.StatesVisited.Inc()
			}
			if m.state.Key.X == market {
				w.record.observe(m.state)
			}
		}
	}
	if w.metrics != nil {
		dup := w.shard.Stats().Duplicates
		w.metrics.Duplicates.Add(float64(dup - w.lastDuplicates))
		w.lastDuplicates = dup
	}
}
