package solve

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/puzzlekit/sudogo/internal/solver"
	"github.com/puzzlekit/sudogo/pkg/sudoku"
)

func run(ctx context.Context, path string, out io.Writer, trace bool) error {
	grid, err := readGrid(path)
	if err != nil {
		return err
	}

	// build solver
	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(solver.LoggingTracer{Writer: os.Stderr}))
	}
	s := solver.New(options...)

	// get solution
	solved, err := s.Solve(ctx, grid)
	if err != nil {
		return err
	}
	if !solved {
		fmt.Fprintln(out, "no solution found")
		return nil
	}
	fmt.Fprint(out, grid)

	return nil
}

func readGrid(path string) (*sudoku.Grid, error) {
	if path == "-" {
		return sudoku.Parse(os.Stdin)
	}
	gridFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening grid file (%s): %w", path, err)
	}
	defer gridFile.Close()

	grid, err := sudoku.Parse(gridFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing grid file (%s): %w", path, err)
	}
	return grid, nil
}
