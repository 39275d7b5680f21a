// Package heatloss routes a crucible across a city block map while keeping
// the accumulated heat loss as low as possible.
//
// Every block holds a single digit, the heat lost when the crucible enters it.
// The crucible starts in the top-left block and must reach the bottom-right
// one. It may never reverse, must turn after Max straight blocks and may only
// turn or stop after Min straight blocks.
package heatloss

import (
	"errors"
	"fmt"
	"math"

	"github.com/wricardo/gridsearch/game/engine"
	"github.com/wricardo/gridsearch/game/grid"
)

var ErrInvalidCrucible = errors.New("invalid crucible")

// Crucible bounds the length of a straight run
type Crucible struct {
	Min int
	Max int
}

var (
	Standard = Crucible{Min: 1, Max: 3}
	Ultra    = Crucible{Min: 4, Max: 10}
)

func (c Crucible) validate() error {
	if c.Min < 1 || c.Max < c.Min {
		return fmt.Errorf("%w: straight run must satisfy 1 <= min <= max, got %d..%d", ErrInvalidCrucible, c.Min, c.Max)
	}
	return nil
}

// state is the search key. The accumulated heat loss is deliberately absent
// so that equal positions reached at different costs collapse into one state.
type state struct {
	Pos grid.Position
	Dir grid.Direction
	Run int // consecutive blocks travelled in Dir, 0 only at the start
}

// Map is a parsed block map
type Map struct {
	blocks  *grid.Grid[int]
	minCost int
}

// Parse reads one row of digits per line
func Parse(lines []string) (*Map, error) {
	minCost := math.MaxInt
	blocks, err := grid.Parse(lines, func(r rune, _ grid.Position) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("unexpected block %q", r)
		}
		cost := int(r - '0')
		minCost = min(minCost, cost)
		return cost, nil
	})
	if err != nil {
		return nil, err
	}
	return &Map{blocks: blocks, minCost: minCost}, nil
}

// Route is the cheapest crucible route
type Route struct {
	HeatLoss int
	Path     []grid.Position // visited blocks, the starting block included
	Expanded int
}

// MinimalHeatLoss returns the least heat loss of any legal route
func (m *Map) MinimalHeatLoss(c Crucible) (int, error) {
	route, err := m.Route(c)
	if err != nil {
		return 0, err
	}
	return route.HeatLoss, nil
}

// Route finds the cheapest legal route for the crucible. An unreachable
// destination is reported as engine.ErrNoPathFound.
func (m *Map) Route(c Crucible) (*Route, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	target := m.blocks.Corner()
	result, err := engine.BestCost(engine.Problem[state]{
		Start:      []state{{Pos: grid.Position{}, Dir: grid.Right}},
		Successors: m.successors(c),
		Goal: func(s state) bool {
			return s.Pos == target && (s.Run >= c.Min || s.Run == 0)
		},
		Heuristic: func(s state) int {
			return s.Pos.Manhattan(target) * m.minCost
		},
	})
	if err != nil {
		return nil, fmt.Errorf("crucible %d..%d: %w", c.Min, c.Max, err)
	}

	path := make([]grid.Position, len(result.Path))
	for i, s := range result.Path {
		path[i] = s.Pos
	}
	return &Route{HeatLoss: result.Cost, Path: path, Expanded: result.Expanded}, nil
}

func (m *Map) successors(c Crucible) func(state) []engine.Edge[state] {
	return func(s state) []engine.Edge[state] {
		edges := make([]engine.Edge[state], 0, 3)
		for _, d := range grid.Directions {
			run := 1
			switch {
			case s.Run == 0:
				// first move, any heading is allowed
			case d == s.Dir.Opposite():
				continue
			case d == s.Dir:
				if s.Run >= c.Max {
					continue
				}
				run = s.Run + 1
			case s.Run < c.Min:
				continue
			}

			next, ok := m.blocks.Step(s.Pos, d)
			if !ok {
				continue
			}
			cost, _ := m.blocks.At(next)
			edges = append(edges, engine.Edge[state]{
				To:   state{Pos: next, Dir: d, Run: run},
				Cost: cost,
			})
		}
		return edges
	}
}
