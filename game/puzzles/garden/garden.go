// Package garden counts the garden plots an elf can stand on after walking
// an exact number of steps.
//
// Each step moves one plot up, left, down or right and rocks cannot be
// entered. Walking back and forth is allowed, so any plot reachable in k
// steps is reachable again in k+2.
package garden

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/wricardo/gridsearch/game/engine"
	"github.com/wricardo/gridsearch/game/grid"
)

const (
	Plot  = '.'
	Rock  = '#'
	Start = 'S'
)

// Garden is a parsed map of plots and rocks
type Garden struct {
	plots *grid.Grid[bool] // true for walkable plots
	start grid.Position
}

// Parse reads the map and locates the single starting plot
func Parse(lines []string) (*Garden, error) {
	starts := 0
	var start grid.Position
	plots, err := grid.Parse(lines, func(r rune, pos grid.Position) (bool, error) {
		switch r {
		case Plot:
			return true, nil
		case Rock:
			return false, nil
		case Start:
			starts++
			start = pos
			return true, nil
		}
		return false, fmt.Errorf("unexpected tile %q", r)
	})
	if err != nil {
		return nil, err
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: expected one start plot, found %d", grid.ErrMalformedInput, starts)
	}
	return &Garden{plots: plots, start: start}, nil
}

// Reachable returns how many plots can be the final position of a walk of
// exactly steps steps.
func (g *Garden) Reachable(steps int) int {
	return g.Positions(steps).Size()
}

// Positions returns the plots reached by walks of exactly steps steps
func (g *Garden) Positions(steps int) mapset.Set[grid.Position] {
	return engine.Layers([]grid.Position{g.start}, steps, func(p grid.Position) []grid.Position {
		next := make([]grid.Position, 0, 4)
		for _, n := range g.plots.Neighbors4(p) {
			if open, _ := g.plots.At(n); open {
				next = append(next, n)
			}
		}
		return next
	})
}
