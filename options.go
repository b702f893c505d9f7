package gridsearch

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/pdrpinto/gridsearch/internal/logging"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Recorder receives one observation per finished Search call.
// Implementations must be safe for concurrent use when passed to SolveAll.
type Recorder interface {
	ObserveSearch(algorithm Algorithm, expanded int, found bool, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSearch(Algorithm, int, bool, time.Duration) {}

// Options defines parameters for the search.
type Options struct {
	// NumberOfWorkers bounds the SolveAll worker pool.
	NumberOfWorkers int
	// MaxExpansions aborts a search with ErrExpansionLimit once this many
	// states were expanded. Zero means unlimited.
	MaxExpansions int
	Logger        *slog.Logger
	Recorder      Recorder
	Tracer        trace.Tracer
}

// Option is a function that modifies Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		NumberOfWorkers: runtime.NumCPU(),
		Logger:          logging.NewNop(),
		Recorder:        nopRecorder{},
		Tracer:          noop.NewTracerProvider().Tracer("gridsearch"),
	}
}

func applyOptions(options []Option) Options {
	searchOptions := defaultOptions()
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// WithWorkers specifies how many worker goroutines SolveAll should run.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions caps the number of expanded states per search.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

// WithLogger sets the logger used to report finished and aborted searches.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(recorder Recorder) Option {
	return func(options *Options) {
		if recorder != nil {
			options.Recorder = recorder
		}
	}
}

// WithTracer sets the tracer that opens one span per search.
func WithTracer(tracer trace.Tracer) Option {
	return func(options *Options) {
		if tracer != nil {
			options.Tracer = tracer
		}
	}
}
