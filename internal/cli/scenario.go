// Package cli holds the scenario format shared by the command line and the
// HTTP API.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/maze"
	"gopkg.in/yaml.v3"
)

// ErrNoLayout is returned when a scenario names neither a layout nor inline text.
var ErrNoLayout = errors.New("scenario has no layout")

// Scenario describes one grid search in plain names.
type Scenario struct {
	Name string `yaml:"name" json:"name,omitempty"`
	// Layout is a built-in layout name or, from the command line, a file path.
	Layout string `yaml:"layout" json:"layout,omitempty"`
	// LayoutText is an inline layout and wins over Layout.
	LayoutText    string `yaml:"layout_text" json:"layout_text,omitempty"`
	Problem       string `yaml:"problem" json:"problem,omitempty"`
	Algorithm     string `yaml:"algorithm" json:"algorithm,omitempty"`
	Heuristic     string `yaml:"heuristic" json:"heuristic,omitempty"`
	Cost          string `yaml:"cost" json:"cost,omitempty"`
	MaxExpansions int    `yaml:"max_expansions" json:"max_expansions,omitempty"`
}

// Load reads a scenario file. Files ending in .json are JSON, anything else YAML.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}

	var scenario Scenario
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &scenario); err != nil {
			return Scenario{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return Scenario{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return scenario, nil
}

// ResolveLayout parses LayoutText when set, otherwise hands Layout to resolve.
func (s Scenario) ResolveLayout(resolve func(string) (*maze.Layout, error)) (*maze.Layout, error) {
	if strings.TrimSpace(s.LayoutText) != "" {
		return maze.ParseLayout(s.LayoutText)
	}
	if s.Layout == "" {
		return nil, ErrNoLayout
	}
	return resolve(s.Layout)
}

// Request validates the names and builds the maze request. An empty algorithm
// means breadth-first search.
func (s Scenario) Request(layout *maze.Layout) (maze.Request, error) {
	algorithm := gridsearch.AlgorithmBFS
	if s.Algorithm != "" {
		parsed, err := gridsearch.ParseAlgorithm(s.Algorithm)
		if err != nil {
			return maze.Request{}, err
		}
		algorithm = parsed
	}
	kind, err := maze.ParseProblemKind(s.Problem)
	if err != nil {
		return maze.Request{}, err
	}
	if _, err := maze.CostByName(s.Cost); err != nil {
		return maze.Request{}, err
	}
	if kind == maze.ProblemCorners {
		_, err = maze.CornersHeuristicByName(s.Heuristic)
	} else {
		_, err = maze.HeuristicByName(s.Heuristic)
	}
	if err != nil {
		return maze.Request{}, err
	}

	return maze.Request{
		Layout:    layout,
		Problem:   kind,
		Algorithm: algorithm,
		Heuristic: s.Heuristic,
		Cost:      s.Cost,
	}, nil
}

// Options returns the search options the scenario asks for.
func (s Scenario) Options() []gridsearch.Option {
	if s.MaxExpansions <= 0 {
		return nil
	}
	return []gridsearch.Option{gridsearch.WithMaxExpansions(s.MaxExpansions)}
}
