package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/cli"
	"github.com/pdrpinto/gridsearch/maze"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every algorithm on one layout",
	Long:  `Runs DFS, BFS, UCS and A* concurrently on the same problem and prints one row per algorithm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := scenarioFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		workers, _ := cmd.Flags().GetInt("workers")
		return runCompare(cmd.Context(), cmd.OutOrStdout(), scenario, workers)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addScenarioFlags(compareCmd.Flags())
	compareCmd.Flags().IntP("workers", "w", 0, "Concurrent searches (0 = number of CPUs)")
}

func runCompare(ctx context.Context, out io.Writer, scenario cli.Scenario, workers int) error {
	layout, err := scenario.ResolveLayout(maze.Resolve)
	if err != nil {
		return err
	}
	request, err := scenario.Request(layout)
	if err != nil {
		return err
	}

	options := append(scenario.Options(), gridsearch.WithLogger(logger))
	if workers > 0 {
		options = append(options, gridsearch.WithWorkers(workers))
	}
	outcomes, err := maze.Compare(ctx, request, options...)
	if err != nil {
		return err
	}

	table := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "ALGORITHM\tFOUND\tLENGTH\tCOST\tEXPANDED\tERROR")
	for _, outcome := range outcomes {
		errText := "-"
		if outcome.Err != nil {
			errText = outcome.Err.Error()
		}
		fmt.Fprintf(table, "%s\t%t\t%d\t%g\t%d\t%s\n",
			outcome.Algorithm,
			outcome.Report.Found,
			len(outcome.Report.Actions),
			outcome.Report.Cost,
			outcome.Report.ExpandedNodes(),
			errText,
		)
	}
	return table.Flush()
}
