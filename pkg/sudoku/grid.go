package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is the 9x9 board, addressed grid[row][col] with both indices in
// [0,9). It is a plain value type: grids compare with == and copy by
// assignment. Solvers mutate a Grid in place through a pointer and never
// retain it after returning.
type Grid [9][9]Cell

// Validate reports every cell holding a value outside {Empty, 1..9}.
// It returns nil for well-formed grids. Duplicate clues are not a
// validation error; they make the grid unsatisfiable, which is an
// ordinary negative result of solving.
func (g *Grid) Validate() error {
	var bad InvalidGridError
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if !g[row][col].Valid() {
				bad = append(bad, BadCellError{Row: row, Col: col, Value: g[row][col]})
			}
		}
	}
	if len(bad) > 0 {
		return bad
	}
	return nil
}

// Empties returns the number of unfilled cells.
func (g *Grid) Empties() int {
	n := 0
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if g[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line, cells space-separated,
// empty cells as ".". The output parses back with Parse.
func (g Grid) String() string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			sb.WriteString(g[row][col].String())
			if col != 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a grid from its textual form: nine rows of nine cells,
// where a cell is a digit 1-9 or one of '.', '0', '_' for empty.
// Spaces between cells are ignored, as are blank lines and lines
// starting with '#'.
func Parse(r io.Reader) (*Grid, error) {
	grid := &Grid{}
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if row >= 9 {
			return nil, fmt.Errorf("invalid grid: more than 9 rows")
		}
		col := 0
		for _, ch := range line {
			if ch == ' ' || ch == '\t' {
				continue
			}
			if col >= 9 {
				return nil, fmt.Errorf("invalid grid: row %d has more than 9 cells", row)
			}
			cell, err := parseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("invalid grid: row %d: %w", row, err)
			}
			grid[row][col] = cell
			col++
		}
		if col != 9 {
			return nil, fmt.Errorf("invalid grid: row %d has %d cells, expected 9", row, col)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading grid data: %w", err)
	}
	if row != 9 {
		return nil, fmt.Errorf("invalid grid: found %d rows, expected 9", row)
	}
	return grid, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

func parseCell(ch rune) (Cell, error) {
	switch {
	case ch >= '1' && ch <= '9':
		return Cell(ch - '0'), nil
	case ch == '.' || ch == '0' || ch == '_':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("invalid cell %q", ch)
	}
}
