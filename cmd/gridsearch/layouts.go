package main

import (
	"fmt"
	"io"

	"github.com/pdrpinto/gridsearch/maze"
	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [name]",
	Short: "List the built-in layouts or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runLayouts(cmd.OutOrStdout(), name)
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

func runLayouts(out io.Writer, name string) error {
	if name == "" {
		for _, builtin := range maze.BuiltinNames() {
			fmt.Fprintln(out, builtin)
		}
		return nil
	}
	text, err := maze.BuiltinText(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}
