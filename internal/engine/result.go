package engine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matthew-mcallister/cammy/internal/camel"
	"github.com/matthew-mcallister/cammy/internal/visited"
)

// ErrNoSolution is returned when no state at the market position was ever
// discovered, i.e. Cammy cannot reach the market at all.
var ErrNoSolution = errors.New("no solution: the market is unreachable")

// SolutionRecord tracks, for one worker, the best delivery seen among the
// market states its shard owns: the delivered amount and every canonical
// key achieving it.
type SolutionRecord struct {
	Best    int         // Largest Held observed at the market position
	Winners []camel.Key // Every market key first discovered with Held == Best
}

// observe folds one newly inserted market state into the record. A
// strictly better delivery replaces the winner set, an equal one extends
// it. Note a delivery of zero is still a solution: Cammy reached the
// market, just empty-handed.
func (r *SolutionRecord) observe(s camel.State) {
	switch {
	case len(r.Winners) == 0 || s.Held > r.Best:
		r.Best = s.Held
		r.Winners = append(r.Winners[:0], s.Key)
	case s.Held == r.Best:
		r.Winners = append(r.Winners, s.Key)
	}
}

// mergeRecords reduces the per-worker records into the global optimum.
// The reduction is commutative and associative, so the arrival order of
// records across workers does not matter.
func mergeRecords(records []SolutionRecord) SolutionRecord {
	var merged SolutionRecord
	for _, r := range records {
		if len(r.Winners) == 0 {
			continue
		}
		switch {
		case len(merged.Winners) == 0 || r.Best > merged.Best:
			merged = SolutionRecord{Best: r.Best, Winners: slices.Clone(r.Winners)}
		case r.Best == merged.Best:
			merged.Winners = append(merged.Winners, r.Winners...)
		}
	}
	return merged
}

// compareKeys orders canonical keys by position, then by pile contents.
// The order itself is arbitrary; it exists so results are reproducible
// run to run regardless of which worker discovered which winner.
func compareKeys(a, b camel.Key) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return strings.Compare(string(a.Piles), string(b.Piles))
}

// Result is the outcome of a completed search.
type Result struct {
	Problem       camel.Problem
	Delivered     int         // Optimal bananas delivered to the market
	Winners       []camel.Key // All optimal market keys, in a stable order
	StatesVisited int         // Distinct canonical states discovered
	Rounds        int         // Search rounds until unanimous termination
	Workers       int         // Worker count used for the run

	table *visited.Table
}

// Solved reports whether any state at the market position was discovered.
func (r *Result) Solved() bool {
	return len(r.Winners) > 0
}

// Lookup exposes the predecessor-lookup capability over the aggregated
// visited table, hashing into the shard that owns the key.
func (r *Result) Lookup(key camel.Key) (visited.Meta, bool) {
	return r.table.Lookup(key)
}

// Path reconstructs the full state sequence from the start to key by
// walking stored predecessors backwards and reversing. The key must have
// been discovered during the run.
func (r *Result) Path(key camel.Key) ([]camel.State, error) {
	var path []camel.State
	for {
		meta, ok := r.table.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("state %s was never visited", key)
		}
		path = append(path, camel.State{Key: key, Held: meta.Held})
		if !meta.HasPrev {
			break
		}
		key = meta.Prev
	}
	slices.Reverse(path)
	return path, nil
}

// BestPath reconstructs the path to the first winner in stable order, or
// returns ErrNoSolution when the market was never reached.
func (r *Result) BestPath() ([]camel.State, error) {
	if !r.Solved() {
		return nil, ErrNoSolution
	}
	return r.Path(r.Winners[0])
}
