// Package schematic reads an engine schematic: a grid of digits, periods and
// symbols.
//
// A part number is a horizontal run of digits touching a symbol, diagonals
// included. A gear is a '*' touching exactly two part numbers; its ratio is
// the product of the two.
package schematic

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/zyedidia/generic/mapset"

	"github.com/wricardo/gridsearch/game/grid"
)

const (
	Blank = '.'
	Gear  = '*'
)

type number struct {
	value int
	cells []grid.Position
}

// Schematic is a parsed engine schematic
type Schematic struct {
	cells   *grid.Grid[rune]
	numbers []number
	owner   map[grid.Position]int // cell -> index into numbers
}

// Parse reads one schematic row per line and collects the digit runs
func Parse(lines []string) (*Schematic, error) {
	g, err := grid.Parse(lines, func(r rune, _ grid.Position) (rune, error) {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return 0, fmt.Errorf("unexpected character %q", r)
		}
		return r, nil
	})
	if err != nil {
		return nil, err
	}

	s := &Schematic{cells: g, owner: make(map[grid.Position]int)}
	var run []grid.Position
	var digits []rune
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		value, err := strconv.Atoi(string(digits))
		if err != nil {
			return fmt.Errorf("%w: number at %v: %v", grid.ErrMalformedInput, run[0], err)
		}
		for _, p := range run {
			s.owner[p] = len(s.numbers)
		}
		s.numbers = append(s.numbers, number{value: value, cells: run})
		run, digits = nil, nil
		return nil
	}

	var failed error
	g.Each(func(p grid.Position, r rune) {
		if failed != nil {
			return
		}
		if p.Col == 0 {
			failed = flush()
		}
		if unicode.IsDigit(r) {
			run = append(run, p)
			digits = append(digits, r)
			return
		}
		if failed == nil {
			failed = flush()
		}
	})
	if failed == nil {
		failed = flush()
	}
	if failed != nil {
		return nil, failed
	}
	return s, nil
}

func isSymbol(r rune) bool {
	return r != Blank && !unicode.IsDigit(r)
}

// adjacent returns the indexes of the numbers touching the cell
func (s *Schematic) adjacent(p grid.Position) mapset.Set[int] {
	found := mapset.New[int]()
	for _, n := range s.cells.Neighbors8(p) {
		if i, ok := s.owner[n]; ok {
			found.Put(i)
		}
	}
	return found
}

// PartNumbers returns the numbers touching a symbol in reading order
func (s *Schematic) PartNumbers() []int {
	var parts []int
	for _, n := range s.numbers {
		if s.touchesSymbol(n) {
			parts = append(parts, n.value)
		}
	}
	return parts
}

func (s *Schematic) touchesSymbol(n number) bool {
	for _, p := range n.cells {
		for _, q := range s.cells.Neighbors8(p) {
			if r, _ := s.cells.At(q); isSymbol(r) {
				return true
			}
		}
	}
	return false
}

// GearRatios returns the ratio of every gear in reading order
func (s *Schematic) GearRatios() ([]int, error) {
	var ratios []int
	for _, p := range s.cells.Find(func(r rune) bool { return r == Gear }) {
		touching := s.adjacent(p)
		if touching.Size() != 2 {
			continue
		}

		ratio := 1
		var err error
		touching.Each(func(i int) {
			if err == nil {
				ratio, err = grid.CheckedMul(ratio, s.numbers[i].value)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("gear at %v: %w", p, err)
		}
		ratios = append(ratios, ratio)
	}
	return ratios, nil
}

// Sum adds values, failing with grid.ErrOverflow when the total wraps
func Sum(values []int) (int, error) {
	total := 0
	for _, v := range values {
		var err error
		if total, err = grid.CheckedAdd(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}
