package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfBounds    = errors.New("position out of bounds")
)

// Grid is an immutable rectangular array of cells
type Grid[T any] struct {
	cells  [][]T
	height int
	width  int
}

// New creates a grid from rows of cells. Rows are copied so later changes to
// the argument do not leak into the grid.
func New[T any](cells [][]T) (*Grid[T], error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrMalformedInput)
	}

	width := len(cells[0])
	copied := make([][]T, len(cells))
	for i, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedInput, i+1, len(row), width)
		}
		copied[i] = append([]T(nil), row...)
	}

	return &Grid[T]{cells: copied, height: len(cells), width: width}, nil
}

// Parse builds a grid from text rows, decoding every rune with decode. The
// decoder receives the cell's position so callers can record metadata such as
// a start tile during the same pass.
func Parse[T any](lines []string, decode func(r rune, pos Position) (T, error)) (*Grid[T], error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedInput)
	}

	cells := make([][]T, len(lines))
	for row, line := range lines {
		cells[row] = make([]T, 0, len(line))
		col := 0
		for _, r := range line {
			cell, err := decode(r, Position{Row: row, Col: col})
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, col %d: %v", ErrMalformedInput, row+1, col+1, err)
			}
			cells[row] = append(cells[row], cell)
			col++
		}
	}

	return New(cells)
}

// Lines splits puzzle text into trimmed, non-blank rows
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Height returns the number of rows
func (g *Grid[T]) Height() int {
	return g.height
}

// Width returns the number of columns
func (g *Grid[T]) Width() int {
	return g.width
}

// InBounds reports whether p lies inside [0,height) x [0,width)
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Get returns the cell at p or ErrOutOfBounds
func (g *Grid[T]) Get(p Position) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.height, g.width)
	}
	return g.cells[p.Row][p.Col], nil
}

// At returns the cell at p and whether p was in bounds
func (g *Grid[T]) At(p Position) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Row][p.Col], true
}

// Step moves one cell from p in direction d, reporting false when the move
// leaves the grid.
func (g *Grid[T]) Step(p Position, d Direction) (Position, bool) {
	next := p.Move(d)
	return next, g.InBounds(next)
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p in the order
// up, left, down, right.
func (g *Grid[T]) Neighbors4(p Position) []Position {
	neighbors := make([]Position, 0, 4)
	for _, d := range Directions {
		if next, ok := g.Step(p, d); ok {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// Neighbors8 adds the diagonals to Neighbors4, returning in-bounds cells
// around p in row-major order.
func (g *Grid[T]) Neighbors8(p Position) []Position {
	neighbors := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			next := Position{Row: p.Row + dr, Col: p.Col + dc}
			if (dr != 0 || dc != 0) && g.InBounds(next) {
				neighbors = append(neighbors, next)
			}
		}
	}
	return neighbors
}

// Each calls fn for every cell in row-major order
func (g *Grid[T]) Each(fn func(p Position, cell T)) {
	for r, row := range g.cells {
		for c, cell := range row {
			fn(Position{Row: r, Col: c}, cell)
		}
	}
}

// Find returns the positions of all cells matching pred, in row-major order
func (g *Grid[T]) Find(pred func(cell T) bool) []Position {
	var found []Position
	g.Each(func(p Position, cell T) {
		if pred(cell) {
			found = append(found, p)
		}
	})
	return found
}

// Count returns the number of cells matching pred
func (g *Grid[T]) Count(pred func(cell T) bool) int {
	return len(g.Find(pred))
}

// Rows returns a deep copy of the cells
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for i, row := range g.cells {
		rows[i] = append([]T(nil), row...)
	}
	return rows
}

// EmptyRows returns the indexes of rows in which every cell matches empty
func (g *Grid[T]) EmptyRows(empty func(cell T) bool) []int {
	var rows []int
	for r, row := range g.cells {
		all := true
		for _, cell := range row {
			if !empty(cell) {
				all = false
				break
			}
		}
		if all {
			rows = append(rows, r)
		}
	}
	return rows
}

// EmptyCols returns the indexes of columns in which every cell matches empty
func (g *Grid[T]) EmptyCols(empty func(cell T) bool) []int {
	var cols []int
	for c := 0; c < g.width; c++ {
		all := true
		for r := 0; r < g.height; r++ {
			if !empty(g.cells[r][c]) {
				all = false
				break
			}
		}
		if all {
			cols = append(cols, c)
		}
	}
	return cols
}

// Corner returns the bottom-right position
func (g *Grid[T]) Corner() Position {
	return Position{Row: g.height - 1, Col: g.width - 1}
}
