package gridsearch

import "errors"

// ErrNotImplemented is raised by UnimplementedProblem methods.
var ErrNotImplemented = errors.New("not implemented")

// ErrUnknownAlgorithm is returned when an algorithm name cannot be resolved.
var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// ErrExpansionLimit is returned when a search expands more states than allowed by WithMaxExpansions.
var ErrExpansionLimit = errors.New("expansion limit reached")
