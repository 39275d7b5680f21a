package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Position represents row,col coordinates
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String returns the position as (row,col)
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move returns the position one step away in direction d. The result is not
// bounds-checked; use Grid.Step for that.
func (p Position) Move(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan calculates the Manhattan distance between two positions
func (p Position) Manhattan(q Position) int {
	return Abs(p.Row-q.Row) + Abs(p.Col-q.Col)
}

// Direction represents one of the four orthogonal headings
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions lists every heading in neighbor order: up, left, down, right.
var Directions = [4]Direction{Up, Left, Down, Right}

// Delta returns the row and column offsets of a single step.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	}
	panic(fmt.Sprintf("grid: invalid direction %d", int(d)))
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Perpendicular reports whether d and o are at a right angle.
func (d Direction) Perpendicular(o Direction) bool {
	return d != o && d != o.Opposite()
}

// Vertical reports whether d is Up or Down
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionTo returns the heading of a single orthogonal step from p to q.
func DirectionTo(p, q Position) (Direction, bool) {
	for _, d := range Directions {
		if p.Move(d) == q {
			return d, true
		}
	}
	return 0, false
}

// ErrOverflow is returned when an answer no longer fits its integer type
var ErrOverflow = errors.New("integer overflow")

// Abs returns the absolute value of x
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// CheckedAdd returns a+b or ErrOverflow when the sum wraps
func CheckedAdd[T constraints.Signed](a, b T) (T, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

// CheckedMul returns a*b or ErrOverflow when the product wraps
func CheckedMul[T constraints.Signed](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/b != a || (a < 0 && b == -1 && product < 0) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return product, nil
}
