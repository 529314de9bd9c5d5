package engine

import (
	"github.com/matthew-mcallister/cammy/internal/camel"
	"github.com/matthew-mcallister/cammy/internal/visited"
)

// Sequential runs the single-threaded reference variant of the search:
// the same breadth-first expansion over the same visited table, with one
// shard, no messaging and no coordinator. It exists as a readable
// restatement of the algorithm and as the oracle the parallel engine is
// tested against; for real workloads use Solve.
func Sequential(problem camel.Problem, opts ...Option) (*Result, error) {
	e, err := New(problem, opts...)
	if err != nil {
		return nil, err
	}
	return e.runSequential(), nil
}

func (e *Engine) runSequential() *Result {
	shard := visited.NewShard(0)
	var record SolutionRecord
	market := e.problem.Market()

	start := e.problem.Start()
	shard.Insert(nil, start)
	if start.Key.X == market {
		record.observe(start)
	}
	if e.metrics != nil {
		e.metrics.StatesVisited.Inc()
	}

	// Level-by-level expansion keeps the strict depth order the monotonic
	// insertion invariant depends on, exactly like the parallel rounds do.
	frontier := []camel.State{start}
	var next []camel.State
	succs := make([]camel.State, 0, e.problem.MaxBranch())

	// Rounds are counted the way the parallel engine counts them: one per
	// depth level plus the final empty round that detects termination.
	rounds := 1
	for len(frontier) > 0 {
		rounds++
		next = next[:0]
		for _, s := range frontier {
			succs = e.problem.Successors(s, succs)
			for _, succ := range succs {
				prev := s.Key
				if !shard.Insert(&prev, succ) {
					continue
				}
				next = append(next, succ)
				if e.metrics != nil {
					e.metrics.StatesVisited.Inc()
				}
				if succ.Key.X == market {
					record.observe(succ)
				}
			}
		}
		frontier, next = next, frontier
	}

	return e.finalize([]*visited.Shard{shard}, []SolutionRecord{record}, rounds, 1)
}
