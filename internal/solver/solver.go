package solver

import (
	"context"

	"github.com/puzzlekit/sudogo/pkg/sudoku"
)

// Solver fills a sudoku.Grid by depth-first search with backtracking.
// It scans for the first empty cell in row-major order and tries the
// digits 1 through 9 in ascending order, so the solution it finds for
// a given input is always the same one.
type Solver struct {
	tracer Tracer
}

type Option func(s *Solver)

// WithTracer installs a Tracer that is invoked every time the search
// exhausts a cell's candidates and backtracks.
func WithTracer(t Tracer) Option {
	return func(s *Solver) {
		s.tracer = t
	}
}

func New(options ...Option) *Solver {
	s := &Solver{
		tracer: DefaultTracer{},
	}
	for _, applyOption := range options {
		applyOption(s)
	}
	return s
}

// Solve mutates g in place. It returns true when g now holds a
// solution, and false with a nil error when no completion exists from
// the given partial state. A non-nil error means the grid was
// malformed or ctx was canceled mid-search; ctx is checked once per
// candidate iteration, which is the only cancellation point the
// search has.
//
// Whenever Solve does not return true, g is bit-for-bit the grid that
// was passed in: every call frame that fails restores the single cell
// it wrote before returning.
func (s *Solver) Solve(ctx context.Context, g *sudoku.Grid) (bool, error) {
	if err := g.Validate(); err != nil {
		return false, err
	}
	return s.search(ctx, g)
}

func (s *Solver) search(ctx context.Context, g *sudoku.Grid) (bool, error) {
	row, col, ok := nextEmpty(g)
	if !ok {
		// no empty cell left: every placement was checked on the
		// way in, so the grid is a solution
		return true, nil
	}

	var tried [9]sudoku.Cell
	n := 0
	for candidate := sudoku.Cell(1); candidate <= 9; candidate++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if !fits(g, row, col, candidate) {
			continue
		}
		tried[n] = candidate
		n++

		g[row][col] = candidate
		solved, err := s.search(ctx, g)
		if solved {
			return true, nil
		}
		g[row][col] = sudoku.Empty
		if err != nil {
			return false, err
		}
	}

	s.tracer.Trace(searchPosition{row: row, col: col, tried: tried[:n]})
	return false, nil
}

// nextEmpty scans in row-major order and returns the first empty
// cell. ok is false when the grid is completely filled.
func nextEmpty(g *sudoku.Grid) (row int, col int, ok bool) {
	for row = 0; row < 9; row++ {
		for col = 0; col < 9; col++ {
			if g[row][col].IsEmpty() {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// fits reports whether placing candidate at (row,col) conflicts with
// any currently filled cell in the same row, column, or 3x3 box. The
// target cell is assumed empty.
func fits(g *sudoku.Grid, row, col int, candidate sudoku.Cell) bool {
	for i := 0; i < 9; i++ {
		if g[row][i] == candidate || g[i][col] == candidate {
			return false
		}
	}
	boxRow, boxCol := row-row%3, col-col%3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if g[r][c] == candidate {
				return false
			}
		}
	}
	return true
}
