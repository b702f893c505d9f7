package gridsearch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pdrpinto/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveAll_ResultsInJobOrder(t *testing.T) {
	var jobs []gridsearch.Job[string, string]
	for length := 2; length < 30; length++ {
		for _, algorithm := range gridsearch.Algorithms() {
			jobs = append(jobs, gridsearch.Job[string, string]{
				Name:      fmt.Sprintf("corridor-%d-%s", length, algorithm),
				Problem:   corridor(length),
				Algorithm: algorithm,
			})
		}
	}

	results, err := gridsearch.SolveAll(context.Background(), jobs, gridsearch.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for index, result := range results {
		require.NoError(t, result.Err)
		assert.Equal(t, jobs[index].Name, result.Name)
		assert.Equal(t, jobs[index].Algorithm, result.Algorithm)
		assert.True(t, result.Result.Found, result.Name)
		assert.Len(t, result.Result.Actions, index/len(gridsearch.Algorithms())+1, result.Name)
	}
}

// Concurrent searches over one shared problem must not interfere.
func TestSolveAll_SharedProblemIsolation(t *testing.T) {
	problem := detour()
	expected := map[gridsearch.Algorithm][]string{
		gridsearch.AlgorithmDFS:   gridsearch.DFS(problem),
		gridsearch.AlgorithmBFS:   gridsearch.BFS(problem),
		gridsearch.AlgorithmUCS:   gridsearch.UCS(problem),
		gridsearch.AlgorithmAStar: gridsearch.AStar(problem, nil),
	}

	var jobs []gridsearch.Job[string, string]
	for i := 0; i < 64; i++ {
		algorithm := gridsearch.Algorithms()[i%4]
		jobs = append(jobs, gridsearch.Job[string, string]{Problem: problem, Algorithm: algorithm})
	}

	results, err := gridsearch.SolveAll(context.Background(), jobs, gridsearch.WithWorkers(8))
	require.NoError(t, err)
	for _, result := range results {
		assert.Equal(t, expected[result.Algorithm], result.Result.Actions, result.Algorithm)
	}
}

func TestSolveAll_PerJobErrors(t *testing.T) {
	jobs := []gridsearch.Job[string, string]{
		{Name: "ok", Problem: diamond(), Algorithm: gridsearch.AlgorithmUCS},
		{Name: "bad", Problem: diamond(), Algorithm: "greedy"},
	}

	results, err := gridsearch.SolveAll(context.Background(), jobs)
	require.NoError(t, err)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, gridsearch.ErrUnknownAlgorithm)
}

func TestSolveAll_Empty(t *testing.T) {
	results, err := gridsearch.SolveAll[string, string](context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSolveAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []gridsearch.Job[string, string]{
		{Problem: corridor(10), Algorithm: gridsearch.AlgorithmBFS},
		{Problem: corridor(10), Algorithm: gridsearch.AlgorithmDFS},
	}
	_, err := gridsearch.SolveAll(ctx, jobs, gridsearch.WithWorkers(1))
	assert.ErrorIs(t, err, context.Canceled)
}
