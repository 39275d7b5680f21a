// Package platform tilts a reflector dish platform covered in rocks and
// measures the load on its north support beams.
//
// Rounded rocks (O) roll as far as they can in the tilt direction, cube
// rocks (#) never move. A spin cycle tilts north, west, south, then east.
// Platforms settle into a repeating sequence of states, which is detected by
// hashing each state so billions of cycles can be skipped.
package platform

import (
	"fmt"

	"tailscale.com/util/deephash"

	"github.com/wricardo/gridsearch/game/grid"
)

const (
	Round = 'O'
	Cube  = '#'
	Empty = '.'
)

// spin is the tilt order of a single spin cycle
var spin = [4]grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right}

// Platform is an immutable rock layout. The parsed grid supplies bounds and
// the edge cells every tilt starts from; cells holds the current rocks.
type Platform struct {
	area  *grid.Grid[rune]
	edges [4][]grid.Position
	cells [][]rune
}

// Parse reads one row of the platform per line
func Parse(lines []string) (*Platform, error) {
	g, err := grid.Parse(lines, func(r rune, _ grid.Position) (rune, error) {
		switch r {
		case Round, Cube, Empty:
			return r, nil
		}
		return 0, fmt.Errorf("unexpected rock %q", r)
	})
	if err != nil {
		return nil, err
	}

	p := &Platform{area: g, cells: g.Rows()}
	for _, d := range grid.Directions {
		g.Each(func(pos grid.Position, _ rune) {
			if _, ok := g.Step(pos, d); !ok {
				p.edges[d] = append(p.edges[d], pos)
			}
		})
	}
	return p, nil
}

func (p *Platform) clone() *Platform {
	cells := make([][]rune, len(p.cells))
	for i, row := range p.cells {
		cells[i] = append([]rune(nil), row...)
	}
	return &Platform{area: p.area, edges: p.edges, cells: cells}
}

// String renders the platform the way it is parsed
func (p *Platform) String() string {
	out := make([]rune, 0, p.area.Height()*(p.area.Width()+1))
	for _, row := range p.cells {
		out = append(out, row...)
		out = append(out, '\n')
	}
	return string(out)
}

// Tilt returns a copy with every rounded rock rolled toward d
func (p *Platform) Tilt(d grid.Direction) *Platform {
	tilted := p.clone()
	tilted.tilt(d)
	return tilted
}

// TiltNorth is Tilt(grid.Up)
func (p *Platform) TiltNorth() *Platform {
	return p.Tilt(grid.Up)
}

// tilt rolls rocks in place. Each line starts on the edge d points at and is
// walked away from it, keeping the next free slot.
func (p *Platform) tilt(d grid.Direction) {
	back := d.Opposite()
	for _, start := range p.edges[d] {
		free := start
		for pos, ok := start, true; ok; pos, ok = p.area.Step(pos, back) {
			switch p.cells[pos.Row][pos.Col] {
			case Cube:
				free = pos.Move(back)
			case Round:
				p.cells[pos.Row][pos.Col] = Empty
				p.cells[free.Row][free.Col] = Round
				free = free.Move(back)
			}
		}
	}
}

// Cycle returns the platform after one spin cycle
func (p *Platform) Cycle() *Platform {
	next := p.clone()
	for _, d := range spin {
		next.tilt(d)
	}
	return next
}

// Load sums, over every rounded rock, its distance to the south edge
// counted in rows (a rock on the north row weighs height).
func (p *Platform) Load() int {
	load := 0
	for row, cells := range p.cells {
		for _, c := range cells {
			if c == Round {
				load += p.area.Height() - row
			}
		}
	}
	return load
}

func (p *Platform) hash() deephash.Sum {
	return deephash.Hash(&p.cells)
}

// SpinLoad returns the north load after the given number of spin cycles
func (p *Platform) SpinLoad(cycles int) int {
	return p.Spin(cycles).Load()
}

// Spin runs the given number of spin cycles, jumping ahead once a state
// repeats.
func (p *Platform) Spin(cycles int) *Platform {
	seen := map[deephash.Sum]int{p.hash(): 0}
	states := []*Platform{p}

	current := p
	for i := 1; i <= cycles; i++ {
		current = current.Cycle()
		h := current.hash()
		if first, ok := seen[h]; ok {
			period := i - first
			return states[first+(cycles-first)%period]
		}
		seen[h] = i
		states = append(states, current)
	}
	return current
}
