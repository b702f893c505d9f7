// Package server exposes the grid world over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/cache"
	"github.com/pdrpinto/gridsearch/internal/cli"
	"github.com/pdrpinto/gridsearch/internal/logging"
	"github.com/pdrpinto/gridsearch/maze"
	"github.com/pdrpinto/gridsearch/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var errBadBody = errors.New("invalid request body")

const (
	// DefaultMaxExpansions caps a single search when Config.MaxExpansions is zero.
	DefaultMaxExpansions = 200000
	// DefaultTimeout bounds a single search when Config.Timeout is zero.
	DefaultTimeout = 10 * time.Second
)

// Config wires the handler's collaborators. Zero fields get defaults: an
// in-memory cache, a private registry, a nop logger and the default limits.
type Config struct {
	Store    cache.Store
	Registry *prometheus.Registry
	Logger   *slog.Logger
	// MaxExpansions is the largest expansion budget a request may use. A
	// request asking for more, or for none, gets this budget.
	MaxExpansions int
	// Timeout bounds the wall time of one search.
	Timeout time.Duration
	// Options are applied to every search.
	Options []gridsearch.Option
}

// Server holds the handler state.
type Server struct {
	store    cache.Store
	registry *prometheus.Registry
	logger   *slog.Logger
	options  []gridsearch.Option

	maxExpansions int
	timeout       time.Duration
}

// solveResponse is the /solve body: the report plus bookkeeping.
type solveResponse struct {
	maze.Report
	ExpandedCount int  `json:"expanded"`
	Cached        bool `json:"cached"`
}

// frame is one step of a /replay animation.
type frame struct {
	Step    int             `json:"step"`
	Current maze.Position   `json:"current"`
	Done    bool            `json:"done"`
	Found   bool            `json:"found"`
	Path    []maze.Position `json:"path,omitempty"`
}

// replayResponse is the /replay body.
type replayResponse struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Text   string  `json:"text"`
	Cached bool    `json:"cached"`
	Frames []frame `json:"frames"`
}

// generateResponse is the /generate body.
type generateResponse struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Start  maze.Position   `json:"start"`
	Food   []maze.Position `json:"food"`
	Text   string          `json:"text"`
}

// New builds a Server from cfg.
func New(cfg Config) *Server {
	s := &Server{
		store:    cfg.Store,
		registry: cfg.Registry,
		logger:   cfg.Logger,

		maxExpansions: cfg.MaxExpansions,
		timeout:       cfg.Timeout,
	}
	if s.maxExpansions <= 0 {
		s.maxExpansions = DefaultMaxExpansions
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.store == nil {
		s.store = cache.NewMemory()
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.options = append([]gridsearch.Option{
		gridsearch.WithLogger(s.logger),
		gridsearch.WithRecorder(metrics.NewRecorder(s.registry)),
	}, cfg.Options...)
	return s
}

// NewHandler creates the HTTP handler for cfg.
func NewHandler(cfg Config) http.Handler {
	return New(cfg).Routes()
}

// Routes returns the chi router serving every endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/layouts", s.ListLayouts)
	r.Get("/layouts/{name}", s.GetLayout)
	r.Get("/generate", s.Generate)
	r.Post("/solve", s.Solve)
	r.Post("/replay", s.Replay)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// ListLayouts handles GET /layouts.
func (s *Server) ListLayouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, maze.BuiltinNames())
}

// GetLayout handles GET /layouts/{name} and returns the layout text.
func (s *Server) GetLayout(w http.ResponseWriter, r *http.Request) {
	text, err := maze.BuiltinText(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// Generate handles GET /generate. Query parameters w, h, clusters, steps,
// density and seed override the defaults; invalid values are ignored and
// oversized ones clamped.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var options maze.GenerateOptions
	if v, err := strconv.Atoi(q.Get("w")); err == nil {
		options.Width = v
	}
	if v, err := strconv.Atoi(q.Get("h")); err == nil {
		options.Height = v
	}
	if v, err := strconv.Atoi(q.Get("clusters")); err == nil {
		options.Clusters = v
	}
	if v, err := strconv.Atoi(q.Get("steps")); err == nil {
		options.Steps = v
	}
	if v, err := strconv.ParseFloat(q.Get("density"), 64); err == nil {
		options.Density = &v
	}
	if v, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		options.Seed = v
	}

	layout := maze.Generate(options)
	writeJSON(w, http.StatusOK, generateResponse{
		Width:  layout.Width,
		Height: layout.Height,
		Start:  layout.Start,
		Food:   layout.Food,
		Text:   layout.String(),
	})
}

// Solve handles POST /solve. Successful reports are cached by request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	_, report, cached, err := s.solve(r)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, solveResponse{Report: report, ExpandedCount: report.ExpandedNodes(), Cached: cached})
}

// Replay handles POST /replay: the same body as /solve, answered with one
// frame per expansion so a client can animate the search.
func (s *Server) Replay(w http.ResponseWriter, r *http.Request) {
	layout, report, cached, err := s.solve(r)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	stepper := gridsearch.NewStepper(gridsearch.Result[maze.Position, maze.Direction]{
		Actions:  report.Actions,
		Path:     report.Path,
		Cost:     report.Cost,
		Expanded: report.Expanded,
		Found:    report.Found,
	})
	frames := make([]frame, 0, stepper.Remaining()+1)
	for {
		snapshot := stepper.Step()
		frames = append(frames, frame{
			Step:    snapshot.StepIndex,
			Current: snapshot.Current,
			Done:    snapshot.Done,
			Found:   snapshot.Found,
			Path:    snapshot.Path,
		})
		if snapshot.Done {
			break
		}
	}

	writeJSON(w, http.StatusOK, replayResponse{
		Width:  layout.Width,
		Height: layout.Height,
		Text:   layout.String(),
		Cached: cached,
		Frames: frames,
	})
}

// solve resolves the request body into a report, from the cache when possible.
func (s *Server) solve(r *http.Request) (*maze.Layout, maze.Report, bool, error) {
	var scenario cli.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		return nil, maze.Report{}, false, fmt.Errorf("%w: %v", errBadBody, err)
	}

	// Only built-in layouts by name: the API never reads the filesystem.
	layout, err := scenario.ResolveLayout(maze.Builtin)
	if err != nil {
		return nil, maze.Report{}, false, err
	}
	request, err := scenario.Request(layout)
	if err != nil {
		return nil, maze.Report{}, false, err
	}

	limit := s.expansionLimit(scenario.MaxExpansions)
	key := cache.Key(layout.String(), string(request.Problem), string(request.Algorithm),
		request.Heuristic, request.Cost, strconv.Itoa(limit))
	if report, ok := s.lookup(r.Context(), key); ok {
		return layout, report, true, nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	options := append([]gridsearch.Option{gridsearch.WithMaxExpansions(limit)}, s.options...)
	report, err := maze.Solve(ctx, request, options...)
	if err != nil {
		return nil, maze.Report{}, false, err
	}
	s.remember(r.Context(), key, report)
	return layout, report, false, nil
}

// expansionLimit returns the request's budget capped at the server's.
func (s *Server) expansionLimit(requested int) int {
	if requested <= 0 || requested > s.maxExpansions {
		return s.maxExpansions
	}
	return requested
}

func (s *Server) lookup(ctx context.Context, key string) (maze.Report, bool) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return maze.Report{}, false
	}
	var report maze.Report
	if err := json.Unmarshal(data, &report); err != nil {
		s.logger.Warn("cache entry unreadable", "key", key, "error", err)
		return maze.Report{}, false
	}
	return report, true
}

func (s *Server) remember(ctx context.Context, key string, report maze.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		s.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrUnknownLayout):
		return http.StatusNotFound
	case errors.Is(err, errBadBody),
		errors.Is(err, gridsearch.ErrUnknownAlgorithm),
		errors.Is(err, cli.ErrNoLayout),
		errors.Is(err, maze.ErrNoStart),
		errors.Is(err, maze.ErrNoGoal),
		errors.Is(err, maze.ErrRaggedLayout),
		errors.Is(err, maze.ErrUnknownHeuristic),
		errors.Is(err, maze.ErrUnknownCost),
		errors.Is(err, maze.ErrUnknownProblem):
		return http.StatusBadRequest
	case errors.Is(err, gridsearch.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
