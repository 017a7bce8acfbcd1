package sudoku

import (
	"fmt"
	"strings"
)

// BadCellError records a single cell whose value is outside the
// representable range.
type BadCellError struct {
	Row   int
	Col   int
	Value Cell
}

func (e BadCellError) Error() string {
	return fmt.Sprintf("cell (%d,%d) holds %d, want a digit in [1,9] or empty", e.Row, e.Col, uint8(e.Value))
}

// InvalidGridError is an error composed of every cell that makes a
// grid malformed.
type InvalidGridError []BadCellError

func (e InvalidGridError) Error() string {
	const msg = "grid is not valid"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.Error()
	}
	return fmt.Sprintf("%s:\n%s", msg, strings.Join(s, "\n"))
}
