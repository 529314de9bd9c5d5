package engine

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthew-mcallister/cammy/internal/camel"
)

// scenarios are small instances with independently verified outcomes.
// delivered == 0 with winners > 0 means the market is reachable only
// empty-handed; winners == 0 means it is not reachable at all.
var scenarios = []struct {
	problem   camel.Problem
	delivered int
	states    int
	winners   int
}{
	{camel.Problem{Distance: 1, Capacity: 5, Bananas: 7}, 5, 1, 1},
	{camel.Problem{Distance: 2, Capacity: 5, Bananas: 7}, 4, 35, 2},
	{camel.Problem{Distance: 4, Capacity: 10, Bananas: 8}, 5, 245, 1},
	{camel.Problem{Distance: 4, Capacity: 5, Bananas: 12}, 3, 543, 7},
	{camel.Problem{Distance: 5, Capacity: 3, Bananas: 10}, 0, 119, 4},
	{camel.Problem{Distance: 6, Capacity: 3, Bananas: 10}, 0, 119, 0},
	{camel.Problem{Distance: 4, Capacity: 0, Bananas: 5}, 0, 1, 0},
	{camel.Problem{Distance: 6, Capacity: 5, Bananas: 18}, 2, 3257, 18},
	{camel.Problem{Distance: 7, Capacity: 5, Bananas: 20}, 2, 5287, 1},
	{camel.Problem{Distance: 8, Capacity: 5, Bananas: 22}, 1, 7264, 2},
}

func scenarioName(p camel.Problem) string {
	return fmt.Sprintf("d%d_c%d_b%d", p.Distance, p.Capacity, p.Bananas)
}

func TestSolveScenarios(t *testing.T) {
	for _, tc := range scenarios {
		t.Run(scenarioName(tc.problem), func(t *testing.T) {
			result, err := Solve(tc.problem, WithWorkers(4))
			require.NoError(t, err)

			assert.Equal(t, tc.delivered, result.Delivered)
			assert.Equal(t, tc.states, result.StatesVisited)
			assert.Len(t, result.Winners, tc.winners)
			assert.Equal(t, tc.winners > 0, result.Solved())
			assert.Equal(t, 4, result.Workers)
		})
	}
}

// TestSolveDeterminism runs the same instance under different worker counts
// and checks every externally visible outcome matches, including the winner
// set and the round count.
func TestSolveDeterminism(t *testing.T) {
	problem := camel.Problem{Distance: 6, Capacity: 5, Bananas: 18}

	base, err := Solve(problem, WithWorkers(1))
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		t.Run(fmt.Sprintf("workers_%d", workers), func(t *testing.T) {
			result, err := Solve(problem, WithWorkers(workers))
			require.NoError(t, err)

			assert.Equal(t, base.Delivered, result.Delivered)
			assert.Equal(t, base.StatesVisited, result.StatesVisited)
			assert.Equal(t, base.Rounds, result.Rounds)
			assert.Equal(t, base.Winners, result.Winners, "winner sets must match in stable order")
		})
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(camel.Problem{Distance: 0, Capacity: 1, Bananas: 1})
	assert.Error(t, err, "zero-length road")

	_, err = New(camel.Problem{Distance: 3, Capacity: -1, Bananas: 1})
	assert.Error(t, err, "negative capacity")

	_, err = New(camel.Problem{Distance: 3, Capacity: 1, Bananas: camel.MaxAmount + 1})
	assert.Error(t, err, "bananas beyond encodable range")

	_, err = New(camel.Problem{Distance: 3, Capacity: 1, Bananas: 1}, WithWorkers(0))
	assert.Error(t, err, "worker count below 1")

	_, err = New(camel.Problem{Distance: 3, Capacity: 1, Bananas: 1})
	assert.NoError(t, err)
}

func TestSolveMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	problem := camel.Problem{Distance: 4, Capacity: 5, Bananas: 12}
	result, err := Solve(problem, WithWorkers(3), WithMetrics(metrics))
	require.NoError(t, err)

	assert.Equal(t, float64(result.StatesVisited), testutil.ToFloat64(metrics.StatesVisited))
	assert.Equal(t, float64(result.Rounds), testutil.ToFloat64(metrics.Rounds))
	// Every discovered state except the seeded start arrived as a routed
	// message, so routing traffic can never be below that.
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.MessagesRouted), float64(result.StatesVisited-1))
}

func TestResultPath(t *testing.T) {
	problem := camel.Problem{Distance: 4, Capacity: 10, Bananas: 8}
	result, err := Solve(problem, WithWorkers(2))
	require.NoError(t, err)
	require.True(t, result.Solved())

	path, err := result.BestPath()
	require.NoError(t, err)
	require.NotEmpty(t, path)

	assert.Equal(t, problem.Start(), path[0], "path must begin at the start state")
	last := path[len(path)-1]
	assert.Equal(t, problem.Market(), last.Key.X)
	assert.Equal(t, result.Delivered, last.Held)

	// Each hop is a legal transition from its predecessor, and each step
	// burns exactly one banana.
	succs := make([]camel.State, 0, problem.MaxBranch())
	for i := 1; i < len(path); i++ {
		succs = problem.Successors(path[i-1], succs)
		assert.Contains(t, succs, path[i], "step %d is not a legal transition", i)
		assert.Equal(t, path[i-1].Total()-1, path[i].Total())
	}
}

func TestResultPathUnknownKey(t *testing.T) {
	result, err := Solve(camel.Problem{Distance: 2, Capacity: 5, Bananas: 7}, WithWorkers(2))
	require.NoError(t, err)

	_, err = result.Path(camel.Key{Piles: camel.PilesOf(9, 9), X: 0})
	assert.Error(t, err)
}

func TestBestPathNoSolution(t *testing.T) {
	result, err := Solve(camel.Problem{Distance: 6, Capacity: 3, Bananas: 10}, WithWorkers(2))
	require.NoError(t, err)
	require.False(t, result.Solved())

	_, err = result.BestPath()
	assert.ErrorIs(t, err, ErrNoSolution)
}
