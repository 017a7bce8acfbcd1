package solve

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewSolveCommand() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a sudoku board given in text format",
		Long: `Solves a sudoku board given in text format, reading from stdin
when <path> is "-". A board is nine rows of nine cells; a cell is a
digit 1-9, or one of '.', '0', '_' for an empty cell. Spaces between
cells, blank lines, and lines starting with '#' are ignored. For
instance:

# a board with three clues in the first row
3 9 . . 5 . . . .
. . . 2 . . . . 5
. . . 7 1 9 . 8 .
. 5 . . 6 8 . . .
2 . 6 . . 3 . . .
. . . . . . . . 4
5 . . . . . . . .
6 7 . 1 . 5 . 4 .
1 . 9 . . . 2 . .
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				return nil
			}
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], cmd.OutOrStdout(), trace)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "log every backtracking step of the search to stderr")

	return cmd
}
