package gridsearch

import "context"

// Job is one independent search submitted to SolveAll.
type Job[StateType comparable, ActionType any] struct {
	Name      string
	Problem   Problem[StateType, ActionType]
	Algorithm Algorithm
	Heuristic Heuristic[StateType, ActionType]
}

// JobResult pairs a job with its outcome.
type JobResult[StateType comparable, ActionType any] struct {
	Name      string
	Algorithm Algorithm
	Result    Result[StateType, ActionType]
	Err       error
}

// solveTask represents a request from the orchestrator to the workers.
type solveTask[StateType comparable, ActionType any] struct {
	Index int
	Job   Job[StateType, ActionType]
}

// solveOutcome is the worker's answer for one task.
type solveOutcome[StateType comparable, ActionType any] struct {
	Index  int
	Result Result[StateType, ActionType]
	Err    error
}

// SolveAll runs every job on a pool of WithWorkers goroutines and returns the
// results in job order. Each job is a separate Search call with its own
// visited set; problems shared between jobs must tolerate concurrent reads.
// A cancelled context stops the pool and returns the context error.
func SolveAll[StateType comparable, ActionType any](
	contextObject context.Context,
	jobs []Job[StateType, ActionType],
	options ...Option,
) ([]JobResult[StateType, ActionType], error) {
	results := make([]JobResult[StateType, ActionType], len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}
	if err := contextObject.Err(); err != nil {
		return nil, err
	}

	// --- Apply options ---
	searchOptions := applyOptions(options)
	numberOfWorkers := searchOptions.NumberOfWorkers
	if numberOfWorkers < 1 {
		numberOfWorkers = 1
	}
	if numberOfWorkers > len(jobs) {
		numberOfWorkers = len(jobs)
	}

	// Channels for communication
	solveTaskChannel := make(chan solveTask[StateType, ActionType])
	solveOutcomeChannel := make(chan solveOutcome[StateType, ActionType], len(jobs))

	// --- Start worker pool ---
	for i := 0; i < numberOfWorkers; i++ {
		go func() {
			for task := range solveTaskChannel {
				result, err := Search(contextObject, task.Job.Problem, task.Job.Algorithm, task.Job.Heuristic, options...)
				solveOutcomeChannel <- solveOutcome[StateType, ActionType]{Index: task.Index, Result: result, Err: err}
			}
		}()
	}

	go func() {
		defer close(solveTaskChannel)
		for index, job := range jobs {
			select {
			case <-contextObject.Done():
				return
			case solveTaskChannel <- solveTask[StateType, ActionType]{Index: index, Job: job}:
			}
		}
	}()

	// --- Collect outcomes ---
	for received := 0; received < len(jobs); received++ {
		select {
		case <-contextObject.Done():
			return nil, contextObject.Err()
		case outcome := <-solveOutcomeChannel:
			job := jobs[outcome.Index]
			results[outcome.Index] = JobResult[StateType, ActionType]{
				Name:      job.Name,
				Algorithm: job.Algorithm,
				Result:    outcome.Result,
				Err:       outcome.Err,
			}
		}
	}
	if err := contextObject.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
