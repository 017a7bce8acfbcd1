package solver

import (
	"fmt"
	"io"

	"github.com/puzzlekit/sudogo/pkg/sudoku"
)

// SearchPosition describes a cell whose candidates were exhausted,
// forcing the search to backtrack.
type SearchPosition interface {
	Coords() (row int, col int)
	Tried() []sudoku.Cell
}

type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	row, col := p.Coords()
	fmt.Fprintf(t.Writer, "---\nBacktracking from (%d,%d)\nTried:\n", row, col)
	for _, c := range p.Tried() {
		fmt.Fprintf(t.Writer, "- %s\n", c)
	}
}

type searchPosition struct {
	row   int
	col   int
	tried []sudoku.Cell
}

func (p searchPosition) Coords() (int, int) {
	return p.row, p.col
}

func (p searchPosition) Tried() []sudoku.Cell {
	return p.tried
}
