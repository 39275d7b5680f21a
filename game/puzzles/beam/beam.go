// Package beam simulates a light beam bouncing through a contraption of
// mirrors and splitters and counts the tiles it energizes.
//
// A beam moving onto an empty tile keeps its heading. Mirrors turn it by 90
// degrees. A splitter hit on its pointy end is passed through; hit on its flat
// side it splits the beam into the two headings along its axis. Beams can
// loop forever, so every (tile, heading) pair is expanded at most once.
package beam

import (
	"fmt"

	"github.com/wricardo/gridsearch/game/engine"
	"github.com/wricardo/gridsearch/game/grid"
)

// Ray is a beam entering the tile at Pos while travelling in Dir
type Ray struct {
	Pos grid.Position
	Dir grid.Direction
}

// Contraption is a parsed tile layout
type Contraption struct {
	tiles *grid.Grid[Tile]
	table deflectionTable
}

// Parse reads one row of tiles per line
func Parse(lines []string) (*Contraption, error) {
	tiles, err := grid.Parse(lines, func(r rune, _ grid.Position) (Tile, error) {
		if _, ok := defaultTable[Tile(r)]; !ok {
			return 0, fmt.Errorf("unexpected tile %q", r)
		}
		return Tile(r), nil
	})
	if err != nil {
		return nil, err
	}
	return &Contraption{tiles: tiles, table: defaultTable}, nil
}

// Options tune a single propagation
type Options struct {
	Order engine.Order
	Limit int // maximum (tile, heading) expansions, 0 for none
}

// Energize counts the tiles touched by a beam entering at start
func (c *Contraption) Energize(start Ray) int {
	return c.Propagate(start, Options{}).Touched.Size()
}

// Propagate runs the beam with explicit work-list options
func (c *Contraption) Propagate(start Ray, opts Options) engine.FloodResult[grid.Position] {
	var seeds []Ray
	if c.tiles.InBounds(start.Pos) {
		seeds = append(seeds, start)
	}

	return engine.Flood(engine.FloodOptions[Ray, grid.Position]{
		Start: seeds,
		Step:  c.step,
		Key:   func(r Ray) grid.Position { return r.Pos },
		Order: opts.Order,
		Limit: opts.Limit,
	})
}

func (c *Contraption) step(r Ray) []Ray {
	tile, _ := c.tiles.At(r.Pos)
	out := c.table[tile][r.Dir]

	next := make([]Ray, 0, len(out))
	for _, d := range out {
		if pos, ok := c.tiles.Step(r.Pos, d); ok {
			next = append(next, Ray{Pos: pos, Dir: d})
		}
	}
	return next
}

// EdgeRays lists every beam that can enter the contraption from outside
func (c *Contraption) EdgeRays() []Ray {
	h, w := c.tiles.Height(), c.tiles.Width()
	rays := make([]Ray, 0, 2*(h+w))
	for row := 0; row < h; row++ {
		rays = append(rays,
			Ray{Pos: grid.Position{Row: row, Col: 0}, Dir: grid.Right},
			Ray{Pos: grid.Position{Row: row, Col: w - 1}, Dir: grid.Left},
		)
	}
	for col := 0; col < w; col++ {
		rays = append(rays,
			Ray{Pos: grid.Position{Row: 0, Col: col}, Dir: grid.Down},
			Ray{Pos: grid.Position{Row: h - 1, Col: col}, Dir: grid.Up},
		)
	}
	return rays
}

// MaxEnergized returns the best edge entry and the tiles it energizes
func (c *Contraption) MaxEnergized() (Ray, int) {
	var best Ray
	most := -1
	for _, ray := range c.EdgeRays() {
		if n := c.Energize(ray); n > most {
			best, most = ray, n
		}
	}
	return best, most
}
