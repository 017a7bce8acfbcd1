// Package satgen produces fully solved sudoku boards by handing the
// sudoku rules to a SAT solver. One boolean variable per (row, col,
// digit) triple states that the digit appears at that position; the
// clauses below pin down exactly the boards that satisfy the row,
// column, and box uniqueness rules.
package satgen

import (
	"fmt"
	"math/rand"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/puzzlekit/sudogo/pkg/sudoku"
)

type Generator struct {
	rnd *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// lit maps the triple (row, col, num) with num in [0,9) to a positive
// SAT literal.
func lit(row, col, num int) z.Lit {
	n := num
	n += col * 9
	n += row * 81
	return z.Var(n + 1).Pos()
}

// Generate returns a random fully solved board. Variety comes from
// pinning a random permutation of 1..9 as the first row before
// solving; the same seed always yields the same board.
func (gen *Generator) Generate() (*sudoku.Grid, error) {
	g := gini.New()

	// every position on the board has a number
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				g.Add(lit(row, col, n))
			}
			g.Add(0)
		}
	}

	// every row has unique numbers
	for n := 0; n < 9; n++ {
		for row := 0; row < 9; row++ {
			for colA := 0; colA < 9; colA++ {
				a := lit(row, colA, n)
				for colB := colA + 1; colB < 9; colB++ {
					g.Add(a.Not())
					g.Add(lit(row, colB, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// every column has unique numbers
	for n := 0; n < 9; n++ {
		for col := 0; col < 9; col++ {
			for rowA := 0; rowA < 9; rowA++ {
				a := lit(rowA, col, n)
				for rowB := rowA + 1; rowB < 9; rowB++ {
					g.Add(a.Not())
					g.Add(lit(rowB, col, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// every box rooted at (x,y) has unique numbers
	box := func(x, y int) {
		offs := []struct{ x, y int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
		for n := 0; n < 9; n++ {
			for i, offA := range offs {
				a := lit(x+offA.x, y+offA.y, n)
				for j := i + 1; j < len(offs); j++ {
					offB := offs[j]
					g.Add(a.Not())
					g.Add(lit(x+offB.x, y+offB.y, n).Not())
					g.Add(0)
				}
			}
		}
	}
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			box(x, y)
		}
	}

	// pin a random permutation of 1..9 as the first row
	perm := gen.rnd.Perm(9)
	for col := 0; col < 9; col++ {
		g.Add(lit(0, col, perm[col]))
		g.Add(0)
	}

	if g.Solve() != 1 {
		return nil, fmt.Errorf("sudoku rules reported unsatisfiable, this is a bug")
	}

	grid := &sudoku.Grid{}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				if g.Value(lit(row, col, n)) {
					grid[row][col] = sudoku.Cell(n + 1)
					break
				}
			}
		}
	}
	return grid, nil
}

// Puzzle generates a solved board and clears blanks random cells.
// The result is solvable by construction; no claim is made that the
// solution is unique.
func (gen *Generator) Puzzle(blanks int) (*sudoku.Grid, error) {
	if blanks < 0 || blanks > 81 {
		return nil, fmt.Errorf("invalid blank count %d, want a value in [0,81]", blanks)
	}
	grid, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	cells := gen.rnd.Perm(81)
	for _, cell := range cells[:blanks] {
		grid[cell/9][cell%9] = sudoku.Empty
	}
	return grid, nil
}
