package sudoku_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/puzzlekit/sudogo/pkg/sudoku"
)

func TestSudoku(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sudoku Suite")
}

var _ = Describe("Parse", func() {
	It("should parse a valid board", func() {
		board := `3 9 . . 5 . . . .
. . . 2 . . . . 5
. . . 7 1 9 . 8 .
. 5 . . 6 8 . . .
2 . 6 . . 3 . . .
. . . . . . . . 4
5 . . . . . . . .
6 7 . 1 . 5 . 4 .
1 . 9 . . . 2 . .
`
		grid, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).ToNot(HaveOccurred())
		Expect(grid[0][0]).To(Equal(sudoku.Cell(3)))
		Expect(grid[0][1]).To(Equal(sudoku.Cell(9)))
		Expect(grid[0][2]).To(Equal(sudoku.Empty))
		Expect(grid[8][6]).To(Equal(sudoku.Cell(2)))
	})

	It("should accept compact rows and every empty marker", func() {
		board := strings.Repeat("1234567_9\n", 3) +
			strings.Repeat("12345678.\n", 3) +
			strings.Repeat("123456780\n", 3)
		grid, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).ToNot(HaveOccurred())
		for row := 0; row < 9; row++ {
			Expect(grid[row][7].IsEmpty()).To(Equal(row < 3))
			Expect(grid[row][8].IsEmpty()).To(Equal(row >= 3))
		}
	})

	It("should skip comments and blank lines", func() {
		board := "# a fully empty board\n\n" + strings.Repeat(".........\n\n", 9)
		grid, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).ToNot(HaveOccurred())
		Expect(grid.Empties()).To(Equal(81))
	})

	It("should fail on a short row", func() {
		board := "12345678\n" + strings.Repeat(".........\n", 8)
		_, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).To(MatchError(ContainSubstring("row 0 has 8 cells")))
	})

	It("should fail on a long row", func() {
		board := "1234567891\n" + strings.Repeat(".........\n", 8)
		_, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).To(MatchError(ContainSubstring("more than 9 cells")))
	})

	It("should fail on too few rows", func() {
		board := strings.Repeat(".........\n", 5)
		_, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).To(MatchError(ContainSubstring("found 5 rows")))
	})

	It("should fail on too many rows", func() {
		board := strings.Repeat(".........\n", 10)
		_, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).To(MatchError(ContainSubstring("more than 9 rows")))
	})

	It("should fail on an invalid cell", func() {
		board := "1234567x9\n" + strings.Repeat(".........\n", 8)
		_, err := sudoku.Parse(strings.NewReader(board))
		Expect(err).To(MatchError(ContainSubstring(`invalid cell 'x'`)))
	})
})

var _ = Describe("Grid", func() {
	It("should render and re-parse to the same grid", func() {
		grid := &sudoku.Grid{}
		grid[0][0] = 3
		grid[4][4] = 7
		grid[8][8] = 9

		reparsed, err := sudoku.ParseString(grid.String())
		Expect(err).ToNot(HaveOccurred())
		Expect(*reparsed).To(Equal(*grid))
	})

	It("should count empty cells", func() {
		grid := &sudoku.Grid{}
		Expect(grid.Empties()).To(Equal(81))
		grid[2][3] = 5
		Expect(grid.Empties()).To(Equal(80))
	})

	Describe("Validate", func() {
		It("should accept a well-formed grid", func() {
			grid := &sudoku.Grid{}
			grid[0][0] = 9
			Expect(grid.Validate()).To(Succeed())
		})

		It("should report every out-of-range cell", func() {
			grid := &sudoku.Grid{}
			grid[1][2] = 10
			grid[7][7] = 42

			err := grid.Validate()
			var invalid sudoku.InvalidGridError
			Expect(err).To(BeAssignableToTypeOf(invalid))
			invalid = err.(sudoku.InvalidGridError)
			Expect(invalid).To(HaveLen(2))
			Expect(invalid[0]).To(Equal(sudoku.BadCellError{Row: 1, Col: 2, Value: 10}))
			Expect(invalid[1]).To(Equal(sudoku.BadCellError{Row: 7, Col: 7, Value: 42}))
			Expect(err.Error()).To(ContainSubstring("cell (1,2) holds 10"))
		})
	})
})

var _ = Describe("Cell", func() {
	It("should know when it is empty", func() {
		Expect(sudoku.Empty.IsEmpty()).To(BeTrue())
		Expect(sudoku.Cell(5).IsEmpty()).To(BeFalse())
	})

	It("should render digits and the empty marker", func() {
		Expect(sudoku.Empty.String()).To(Equal("."))
		Expect(sudoku.Cell(5).String()).To(Equal("5"))
	})

	It("should reject out-of-range values", func() {
		Expect(sudoku.Cell(9).Valid()).To(BeTrue())
		Expect(sudoku.Cell(10).Valid()).To(BeFalse())
	})
})
