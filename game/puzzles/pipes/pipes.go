// Package pipes traces the closed pipe loop running through a start tile.
//
// Pipes connect exactly two sides of their tile. A flow may only enter a tile
// through one of those sides. The loop is found by leaving the start tile in
// each direction in turn (up, left, down, right) and following the single
// legal successor until the flow arrives back at the start.
package pipes

import (
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/wricardo/gridsearch/game/engine"
	"github.com/wricardo/gridsearch/game/grid"
)

// minLoop is the shortest possible closed loop, a 2x2 ring
const minLoop = 4

// flow is a position together with the heading used to reach it
type flow struct {
	Pos grid.Position
	Dir grid.Direction
}

// Field is a parsed pipe field
type Field struct {
	tiles      *grid.Grid[rune]
	start      grid.Position
	connectors map[rune]connector
}

// Parse reads the field and locates the single start tile
func Parse(lines []string) (*Field, error) {
	starts := 0
	var start grid.Position
	tiles, err := grid.Parse(lines, func(r rune, pos grid.Position) (rune, error) {
		switch r {
		case Start:
			starts++
			start = pos
		case Ground:
		default:
			if _, ok := defaultConnectors[r]; !ok {
				return 0, fmt.Errorf("unexpected tile %q", r)
			}
		}
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: expected one start tile, found %d", grid.ErrMalformedInput, starts)
	}
	return &Field{tiles: tiles, start: start, connectors: defaultConnectors}, nil
}

// Start returns the start tile position
func (f *Field) Start() grid.Position {
	return f.start
}

// enterable reports whether a flow heading in d may move onto pos
func (f *Field) enterable(pos grid.Position, d grid.Direction) bool {
	tile, ok := f.tiles.At(pos)
	if !ok {
		return false
	}
	if tile == Start {
		return true
	}
	c, ok := f.connectors[tile]
	return ok && c.opensTo(d.Opposite())
}

func (f *Field) next(s flow) (flow, bool) {
	heading := s.Dir
	if tile, _ := f.tiles.At(s.Pos); tile != Start {
		var ok bool
		if heading, ok = f.connectors[tile].exit(s.Dir); !ok {
			return flow{}, false
		}
	}

	pos, ok := f.tiles.Step(s.Pos, heading)
	if !ok || !f.enterable(pos, heading) {
		return flow{}, false
	}
	return flow{Pos: pos, Dir: heading}, true
}

// Trace follows the pipes leaving the start tile in direction first. The
// returned loop lists every tile once and ends with the start tile.
func (f *Field) Trace(first grid.Direction) ([]grid.Position, error) {
	states, err := engine.Walk(flow{Pos: f.start, Dir: first}, f.next, func(s flow) bool {
		return s.Pos == f.start
	})
	if err != nil {
		return nil, fmt.Errorf("trace %v from %v: %w", first, f.start, err)
	}

	loop := make([]grid.Position, len(states))
	for i, s := range states {
		loop[i] = s.Pos
	}
	return loop, nil
}

// Loop finds the loop through the start tile
func (f *Field) Loop() ([]grid.Position, error) {
	if n := f.Network(); n < minLoop {
		return nil, fmt.Errorf("%w: start tile joins only %d connected tiles", engine.ErrNoPathFound, n)
	}

	for _, d := range grid.Directions {
		if loop, err := f.Trace(d); err == nil {
			return loop, nil
		}
	}
	return nil, fmt.Errorf("%w: no loop through %v", engine.ErrNoPathFound, f.start)
}

// FarthestPoint is the number of steps to the loop tile farthest from the start
func (f *Field) FarthestPoint() (int, error) {
	loop, err := f.Loop()
	if err != nil {
		return 0, err
	}
	return (len(loop) + 1) / 2, nil
}

// Enclosed counts the tiles strictly inside the loop. The shoelace formula
// gives the polygon area through the tile centers and Pick's theorem turns it
// into the interior lattice point count.
func (f *Field) Enclosed() (int, error) {
	loop, err := f.Loop()
	if err != nil {
		return 0, err
	}

	area := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		area += p.Col*q.Row - q.Col*p.Row
	}
	area = grid.Abs(area)

	return (area-len(loop))/2 + 1, nil
}

// Network returns the number of tiles in the start tile's pipe network,
// counting two neighbors as connected when both open toward each other.
func (f *Field) Network() int {
	elements := make(map[grid.Position]*disjoint.Element)
	f.tiles.Each(func(p grid.Position, tile rune) {
		if tile != Ground {
			elements[p] = disjoint.NewElement()
		}
	})

	for p, e := range elements {
		for _, d := range []grid.Direction{grid.Right, grid.Down} {
			q := p.Move(d)
			other, ok := elements[q]
			if !ok {
				continue
			}
			if f.opens(p, d) && f.opens(q, d.Opposite()) {
				disjoint.Union(e, other)
			}
		}
	}

	root := elements[f.start].Find()
	size := 0
	for _, e := range elements {
		if e.Find() == root {
			size++
		}
	}
	return size
}

// opens reports whether the tile at p connects toward d. The start tile
// connects everywhere.
func (f *Field) opens(p grid.Position, d grid.Direction) bool {
	tile, _ := f.tiles.At(p)
	if tile == Start {
		return true
	}
	return f.connectors[tile].opensTo(d)
}
