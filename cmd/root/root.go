package root

import (
	"github.com/spf13/cobra"

	"github.com/puzzlekit/sudogo/cmd/generate"

	"github.com/puzzlekit/sudogo/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sudogo",
		Short: "Sudogo is a sudoku solving and generation toolkit",
		Long: `A sudoku solving and generation toolkit written in Go.
The solve command fills a partial board by backtracking search;
the generate command produces fresh boards through a SAT solver.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(generate.NewGenerateCommand())

	return rootCmd
}
