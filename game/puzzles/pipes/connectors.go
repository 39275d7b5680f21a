package pipes

import (
	"errors"
	"fmt"

	"github.com/wricardo/gridsearch/game/grid"
)

var ErrInvalidConnector = errors.New("invalid connector table")

const (
	Start  = 'S'
	Ground = '.'
)

// openings lists the two sides each pipe shape connects
var openings = map[rune][2]grid.Direction{
	'|': {grid.Up, grid.Down},
	'-': {grid.Left, grid.Right},
	'L': {grid.Up, grid.Right},
	'J': {grid.Up, grid.Left},
	'7': {grid.Down, grid.Left},
	'F': {grid.Down, grid.Right},
}

// connector is the validated form of a pipe shape
type connector struct {
	open [4]bool
	ends [2]grid.Direction
}

func (c connector) opensTo(d grid.Direction) bool {
	return c.open[d]
}

// exit returns the side a flow leaves through after entering while heading in
func (c connector) exit(in grid.Direction) (grid.Direction, bool) {
	from := in.Opposite()
	switch from {
	case c.ends[0]:
		return c.ends[1], true
	case c.ends[1]:
		return c.ends[0], true
	}
	return 0, false
}

func newConnectors(table map[rune][2]grid.Direction) (map[rune]connector, error) {
	connectors := make(map[rune]connector, len(table))
	for shape, ends := range table {
		if shape == Start || shape == Ground {
			return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidConnector, shape)
		}
		var c connector
		for _, d := range ends {
			if d < grid.Up || d > grid.Right {
				return nil, fmt.Errorf("%w: shape %q opens to unknown side %d", ErrInvalidConnector, shape, int(d))
			}
			c.open[d] = true
		}
		if ends[0] == ends[1] {
			return nil, fmt.Errorf("%w: shape %q opens twice to %v", ErrInvalidConnector, shape, ends[0])
		}
		c.ends = ends
		connectors[shape] = c
	}
	return connectors, nil
}

var defaultConnectors = func() map[rune]connector {
	c, err := newConnectors(openings)
	if err != nil {
		panic(err)
	}
	return c
}()
