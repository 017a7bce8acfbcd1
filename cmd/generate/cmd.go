package generate

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/puzzlekit/sudogo/internal/satgen"
)

func NewGenerateCommand() *cobra.Command {
	var blanks int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Returns a freshly generated sudoku board",
		Long: `Returns a freshly generated sudoku board. Without flags the board
is fully solved; --blanks clears the given number of cells to turn it
into a puzzle. The board is solvable by construction, but no
uniqueness of the solution is guaranteed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			return run(cmd.OutOrStdout(), seed, blanks)
		},
	}
	cmd.Flags().IntVar(&blanks, "blanks", 0, "number of cells to clear from the solved board")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, defaults to the current time")

	return cmd
}

func run(out io.Writer, seed int64, blanks int) error {
	grid, err := satgen.New(seed).Puzzle(blanks)
	if err != nil {
		return err
	}
	fmt.Fprint(out, grid)
	return nil
}
