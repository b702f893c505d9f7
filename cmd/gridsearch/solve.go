package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/cli"
	"github.com/pdrpinto/gridsearch/maze"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one layout with one algorithm",
	Long: `Solves a layout and prints the actions, their cost and the number of expanded states.
Settings come from flags or from a YAML/JSON scenario given with --config; flags set
explicitly override the scenario.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := scenarioFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		render, _ := cmd.Flags().GetBool("render")
		return runSolve(cmd.Context(), cmd.OutOrStdout(), scenario, render)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addScenarioFlags(solveCmd.Flags())
	solveCmd.Flags().StringP("algorithm", "a", "bfs", "Algorithm: dfs, bfs, ucs or astar")
	solveCmd.Flags().Bool("render", false, "Draw the layout with the path marked")
}

// addScenarioFlags registers the flags shared by solve and compare.
func addScenarioFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Scenario file (YAML or JSON)")
	flags.StringP("layout", "l", "tinyMaze", "Built-in layout name or layout file")
	flags.StringP("problem", "p", "position", "Problem: position or corners")
	flags.String("heuristic", "", "Heuristic: null, manhattan, euclidean or corners")
	flags.String("cost", "", "Step cost: unit, stay-east or stay-west")
	flags.Int("max-expansions", 0, "Abort after this many expansions (0 = unlimited)")
}

// scenarioFromFlags loads --config when given and overlays the flags the user set.
// Without --config every flag applies with its default.
func scenarioFromFlags(flags *pflag.FlagSet) (cli.Scenario, error) {
	var scenario cli.Scenario
	path, _ := flags.GetString("config")
	if path != "" {
		loaded, err := cli.Load(path)
		if err != nil {
			return cli.Scenario{}, err
		}
		scenario = loaded
	}

	use := func(name string) bool {
		return flags.Lookup(name) != nil && (path == "" || flags.Changed(name))
	}
	if use("layout") {
		scenario.Layout, _ = flags.GetString("layout")
		scenario.LayoutText = ""
	}
	if use("problem") {
		scenario.Problem, _ = flags.GetString("problem")
	}
	if use("algorithm") {
		scenario.Algorithm, _ = flags.GetString("algorithm")
	}
	if use("heuristic") {
		scenario.Heuristic, _ = flags.GetString("heuristic")
	}
	if use("cost") {
		scenario.Cost, _ = flags.GetString("cost")
	}
	if use("max-expansions") {
		scenario.MaxExpansions, _ = flags.GetInt("max-expansions")
	}
	return scenario, nil
}

func runSolve(ctx context.Context, out io.Writer, scenario cli.Scenario, render bool) error {
	layout, err := scenario.ResolveLayout(maze.Resolve)
	if err != nil {
		return err
	}
	request, err := scenario.Request(layout)
	if err != nil {
		return err
	}

	options := append(scenario.Options(), gridsearch.WithLogger(logger))
	report, err := maze.Solve(ctx, request, options...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "algorithm: %s\n", request.Algorithm)
	fmt.Fprintf(out, "found:     %t\n", report.Found)
	fmt.Fprintf(out, "actions:   %s\n", joinActions(report.Actions))
	fmt.Fprintf(out, "length:    %d\n", len(report.Actions))
	fmt.Fprintf(out, "cost:      %g\n", report.Cost)
	fmt.Fprintf(out, "expanded:  %d\n", report.ExpandedNodes())
	if render && report.Found {
		fmt.Fprintln(out)
		fmt.Fprint(out, layout.Render(report.Path))
	}
	return nil
}

func joinActions(actions []maze.Direction) string {
	if len(actions) == 0 {
		return "-"
	}
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = string(action)
	}
	return strings.Join(names, " ")
}
