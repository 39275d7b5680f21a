package beam

import (
	"errors"
	"fmt"

	"github.com/wricardo/gridsearch/game/grid"
)

var ErrInvalidTable = errors.New("invalid deflection table")

// Tile is a contraption cell
type Tile rune

const (
	Empty         Tile = '.'
	MirrorSlash   Tile = '/'
	MirrorBack    Tile = '\\'
	SplitterVert  Tile = '|'
	SplitterHoriz Tile = '-'
)

// rules maps every tile and incoming heading to the outgoing headings
type rules map[Tile]map[grid.Direction][]grid.Direction

var contraption = rules{
	Empty: {
		grid.Up: {grid.Up}, grid.Left: {grid.Left}, grid.Down: {grid.Down}, grid.Right: {grid.Right},
	},
	MirrorSlash: {
		grid.Up: {grid.Right}, grid.Left: {grid.Down}, grid.Down: {grid.Left}, grid.Right: {grid.Up},
	},
	MirrorBack: {
		grid.Up: {grid.Left}, grid.Left: {grid.Up}, grid.Down: {grid.Right}, grid.Right: {grid.Down},
	},
	SplitterVert: {
		grid.Up: {grid.Up}, grid.Down: {grid.Down},
		grid.Left: {grid.Up, grid.Down}, grid.Right: {grid.Up, grid.Down},
	},
	SplitterHoriz: {
		grid.Left: {grid.Left}, grid.Right: {grid.Right},
		grid.Up: {grid.Left, grid.Right}, grid.Down: {grid.Left, grid.Right},
	},
}

// deflectionTable is a validated, array-indexed form of rules
type deflectionTable map[Tile][4][]grid.Direction

// newDeflectionTable checks that every tile answers every incoming heading
// with one or two distinct outgoing headings.
func newDeflectionTable(r rules) (deflectionTable, error) {
	if len(r) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrInvalidTable)
	}

	table := make(deflectionTable, len(r))
	for tile, byDir := range r {
		var entry [4][]grid.Direction
		for _, in := range grid.Directions {
			out, ok := byDir[in]
			if !ok {
				return nil, fmt.Errorf("%w: tile %q has no rule for heading %v", ErrInvalidTable, tile, in)
			}
			if len(out) == 0 || len(out) > 2 {
				return nil, fmt.Errorf("%w: tile %q heading %v has %d outputs", ErrInvalidTable, tile, in, len(out))
			}
			if len(out) == 2 && out[0] == out[1] {
				return nil, fmt.Errorf("%w: tile %q heading %v repeats %v", ErrInvalidTable, tile, in, out[0])
			}
			for _, d := range out {
				if d < grid.Up || d > grid.Right {
					return nil, fmt.Errorf("%w: tile %q heading %v has unknown output %d", ErrInvalidTable, tile, in, int(d))
				}
			}
			entry[in] = append([]grid.Direction(nil), out...)
		}
		if len(byDir) != 4 {
			return nil, fmt.Errorf("%w: tile %q has rules for unknown headings", ErrInvalidTable, tile)
		}
		table[tile] = entry
	}
	return table, nil
}

func mustDeflectionTable(r rules) deflectionTable {
	table, err := newDeflectionTable(r)
	if err != nil {
		panic(err)
	}
	return table
}

var defaultTable = mustDeflectionTable(contraption)
