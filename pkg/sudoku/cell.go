package sudoku

import "strconv"

// Cell holds a single grid position: a digit in [1,9] or Empty.
type Cell uint8

// Empty marks a cell that has not been filled yet.
const Empty Cell = 0

// IsEmpty returns true if the cell has no digit.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Valid returns true if the cell is Empty or holds a digit in [1,9].
func (c Cell) Valid() bool {
	return c <= 9
}

// String implements fmt.Stringer. Empty cells render as ".".
func (c Cell) String() string {
	if c.IsEmpty() {
		return "."
	}
	return strconv.Itoa(int(c))
}
