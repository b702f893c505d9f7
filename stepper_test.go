package gridsearch_test

import (
	"context"
	"testing"

	"github.com/pdrpinto/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_ReplaysExpansions(t *testing.T) {
	result, err := gridsearch.Search(context.Background(), diamond(), gridsearch.AlgorithmDFS, nil)
	require.NoError(t, err)

	stepper := gridsearch.NewStepper(result)
	assert.Equal(t, 3, stepper.Remaining())

	first := stepper.Step()
	assert.Equal(t, "A", first.Current)
	assert.Equal(t, []string{"A"}, first.Expanded)
	assert.Equal(t, 1, first.StepIndex)
	assert.False(t, first.Done)

	stepper.Step()
	third := stepper.Step()
	assert.Equal(t, "C", third.Current)
	assert.Equal(t, []string{"A", "B", "C"}, third.Expanded)
	assert.False(t, third.Done)
	assert.Zero(t, stepper.Remaining())

	final := stepper.Step()
	assert.True(t, final.Done)
	assert.True(t, final.Found)
	assert.Equal(t, []string{"A", "B", "D"}, final.Path)
	assert.Equal(t, "C", final.Current)
	assert.Equal(t, 3, final.StepIndex)

	// Done is sticky.
	assert.Equal(t, final, stepper.Step())

	stepper.Reset()
	assert.Equal(t, "A", stepper.Step().Current)
}

func TestStepper_SnapshotsAreCopies(t *testing.T) {
	result, err := gridsearch.Search(context.Background(), corridor(3), gridsearch.AlgorithmBFS, nil)
	require.NoError(t, err)

	stepper := gridsearch.NewStepper(result)
	snapshot := stepper.Step()
	snapshot.Expanded[0] = "mutated"

	assert.Equal(t, "0", result.Expanded[0])
}

func TestStepper_FailedSearch(t *testing.T) {
	problem := newGraph("S", "G").add("S", "A", "a", 1).problem()
	result, err := gridsearch.Search(context.Background(), problem, gridsearch.AlgorithmBFS, nil)
	require.NoError(t, err)

	stepper := gridsearch.NewStepper(result)
	for stepper.Remaining() > 0 {
		stepper.Step()
	}
	final := stepper.Step()
	assert.True(t, final.Done)
	assert.False(t, final.Found)
	assert.Nil(t, final.Path)
}
