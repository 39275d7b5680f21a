// Package galaxy sums the distances between every pair of galaxies in an
// observed image of an expanding universe.
//
// Rows and columns without any galaxy grow by an expansion factor: with a
// factor of 2 each empty row counts twice. Distances are Manhattan distances
// measured after expansion.
package galaxy

import (
	"fmt"

	"github.com/wricardo/gridsearch/game/grid"
)

const (
	Galaxy = '#'
	Space  = '.'
)

// Image is a parsed telescope image
type Image struct {
	galaxies  []grid.Position
	emptyRows []int // prefix counts, emptyRows[i] empty rows before row i
	emptyCols []int
}

// Parse reads the image and records the empty rows and columns
func Parse(lines []string) (*Image, error) {
	sky, err := grid.Parse(lines, func(r rune, _ grid.Position) (bool, error) {
		switch r {
		case Galaxy:
			return true, nil
		case Space:
			return false, nil
		}
		return false, fmt.Errorf("unexpected symbol %q", r)
	})
	if err != nil {
		return nil, err
	}

	empty := func(isGalaxy bool) bool { return !isGalaxy }
	return &Image{
		galaxies:  sky.Find(func(isGalaxy bool) bool { return isGalaxy }),
		emptyRows: prefixCounts(sky.EmptyRows(empty), sky.Height()),
		emptyCols: prefixCounts(sky.EmptyCols(empty), sky.Width()),
	}, nil
}

func prefixCounts(indexes []int, n int) []int {
	marked := make([]bool, n)
	for _, i := range indexes {
		marked[i] = true
	}

	counts := make([]int, n+1)
	for i := 0; i < n; i++ {
		counts[i+1] = counts[i]
		if marked[i] {
			counts[i+1]++
		}
	}
	return counts
}

// Galaxies returns the galaxy count
func (img *Image) Galaxies() int {
	return len(img.galaxies)
}

// Distance is the expanded distance between two observed positions. Factors
// large enough to overflow int fail with grid.ErrOverflow.
func (img *Image) Distance(a, b grid.Position, factor int) (int, error) {
	rows := grid.Abs(img.emptyRows[a.Row] - img.emptyRows[b.Row])
	cols := grid.Abs(img.emptyCols[a.Col] - img.emptyCols[b.Col])

	growth, err := grid.CheckedMul(factor-1, rows+cols)
	if err != nil {
		return 0, err
	}
	return grid.CheckedAdd(a.Manhattan(b), growth)
}

// SumOfDistances adds the expanded distance of every unordered galaxy pair
func (img *Image) SumOfDistances(factor int) (int, error) {
	total := 0
	for i, a := range img.galaxies {
		for _, b := range img.galaxies[i+1:] {
			d, err := img.Distance(a, b, factor)
			if err != nil {
				return 0, err
			}
			if total, err = grid.CheckedAdd(total, d); err != nil {
				return 0, fmt.Errorf("summing distances with factor %d: %w", factor, err)
			}
		}
	}
	return total, nil
}
