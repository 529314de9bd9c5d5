package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/matthew-mcallister/cammy/internal/camel"
	"github.com/matthew-mcallister/cammy/internal/visited"
)

// Engine runs the parallel breadth-first search for one problem instance.
// Construct it with New, run it once with Run.
type Engine struct {
	problem camel.Problem
	workers int
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers overrides the worker count. The default leaves one CPU free
// for the rest of the process: max(1, NumCPU-1).
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithLogger sets a structured logger. By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics attaches Prometheus collectors to the run.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func defaultWorkers() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}

// New validates the problem and builds an engine for it.
func New(problem camel.Problem, opts ...Option) (*Engine, error) {
	if err := problem.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}
	e := &Engine{
		problem: problem,
		workers: defaultWorkers(),
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		return nil, errors.New("worker count must be at least 1")
	}
	return e, nil
}

// Solve is the one-call convenience wrapper: New followed by Run.
func Solve(problem camel.Problem, opts ...Option) (*Result, error) {
	e, err := New(problem, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run(), nil
}

// Run executes the search to unanimous termination and returns the merged
// result. The workers are long-lived goroutines spawned once for the whole
// run; there is no pooling, cancellation or deadline. Run itself cannot
// fail: invariant and messaging violations are programming defects that
// abort the process (see the package documentation).
func (e *Engine) Run() *Result {
	w := e.workers

	shards := make([]*visited.Shard, w)
	for i := range shards {
		shards[i] = visited.NewShard(i)
	}

	// Full W×W mesh of capacity-1 channels; mail[to][from]. Capacity 1 is
	// enough because the barrier admits at most one in-flight batch per
	// edge.
	mail := make([][]chan batch, w)
	for to := range mail {
		mail[to] = make([]chan batch, w)
		for from := range mail[to] {
			mail[to][from] = make(chan batch, 1)
		}
	}

	rv := newRendezvous(w)
	results := make(chan workerResult, w)
	workers := make([]*worker, w)
	for i := range workers {
		send := make([]chan batch, w)
		for to := range send {
			send[to] = mail[to][i]
		}
		workers[i] = &worker{
			id:      i,
			problem: e.problem,
			shard:   shards[i],
			sync:    rv,
			recv:    mail[i],
			send:    send,
			staging: make([][]pair, w),
			succs:   make([]camel.State, 0, e.problem.MaxBranch()),
			logger:  e.logger,
			metrics: e.metrics,
			results: results,
		}
	}

	// Seed the start state into its owning shard. Only that worker begins
	// with a non-empty frontier; everyone else votes to stop immediately
	// until work reaches them.
	start := e.problem.Start()
	owner := visited.ShardFor(start.Key, w)
	shards[owner].Insert(nil, start)
	workers[owner].frontier = append(workers[owner].frontier, start)
	if start.Key.X == e.problem.Market() {
		workers[owner].record.observe(start)
	}
	if e.metrics != nil {
		e.metrics.StatesVisited.Inc()
	}

	e.logger.Info("search starting",
		slog.Int("workers", w),
		slog.Int("distance", e.problem.Distance),
		slog.Int("capacity", e.problem.Capacity),
		slog.Int("bananas", e.problem.Bananas))

	var wg sync.WaitGroup
	for _, wk := range workers {
		wk := wk
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk.run()
		}()
	}
	wg.Wait()
	close(results)

	records := make([]SolutionRecord, 0, w)
	for res := range results {
		records = append(records, res.record)
	}
	return e.finalize(shards, records, rv.roundCount(), w)
}

// finalize merges the per-worker records, aggregates the shards into a
// read-only table and puts the winner set into a stable order.
func (e *Engine) finalize(shards []*visited.Shard, records []SolutionRecord, rounds, workers int) *Result {
	merged := mergeRecords(records)
	slices.SortFunc(merged.Winners, compareKeys)
	if e.metrics != nil {
		e.metrics.Rounds.Add(float64(rounds))
	}

	table := visited.NewTable(shards)
	result := &Result{
		Problem:       e.problem,
		Delivered:     merged.Best,
		Winners:       merged.Winners,
		StatesVisited: table.Size(),
		Rounds:        rounds,
		Workers:       workers,
		table:         table,
	}

	e.logger.Info("search finished",
		slog.Int("states", result.StatesVisited),
		slog.Int("rounds", result.Rounds),
		slog.Int("delivered", result.Delivered),
		slog.Int("winners", len(result.Winners)))
	return result
}
