package engine

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNoPathFound    = errors.New("no path found")
	ErrInvalidProblem = errors.New("invalid search problem")
)

// Edge is a transition to another state with a non-negative step cost
type Edge[S comparable] struct {
	To   S
	Cost int
}

// Problem describes a best-cost search
type Problem[S comparable] struct {
	Start      []S
	Successors func(S) []Edge[S]
	Goal       func(S) bool

	// Heuristic estimates the remaining cost from a state. It must never
	// overestimate; nil means zero, which turns the search into Dijkstra.
	Heuristic func(S) int
}

// Result is the outcome of a successful best-cost search
type Result[S comparable] struct {
	State    S   // goal state that was reached
	Cost     int // accumulated cost of the cheapest path
	Path     []S // states from a start state to State, inclusive
	Expanded int // number of states finalized
}

// entry is a frontier item. Entries are never updated in place; a cheaper
// rediscovery pushes a new entry and the old one is dropped when popped.
type entry[S comparable] struct {
	state    S
	cost     int
	priority int
	seq      int
}

func lessEntry[S comparable](a, b entry[S]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// BestCost finds the cheapest path from any start state to a state accepted
// by Goal. It returns ErrNoPathFound when the frontier empties first.
func BestCost[S comparable](p Problem[S]) (*Result[S], error) {
	if p.Successors == nil || p.Goal == nil {
		return nil, fmt.Errorf("%w: successors and goal are required", ErrInvalidProblem)
	}
	if len(p.Start) == 0 {
		return nil, fmt.Errorf("%w: no start states", ErrNoPathFound)
	}

	estimate := p.Heuristic
	if estimate == nil {
		estimate = func(S) int { return 0 }
	}

	frontier := heap.New[entry[S]](lessEntry[S])
	visited := mapset.New[S]()
	best := make(map[S]int)
	parent := make(map[S]S)
	seq := 0

	for _, s := range p.Start {
		if _, seen := best[s]; seen {
			continue
		}
		best[s] = 0
		frontier.Push(entry[S]{state: s, priority: estimate(s), seq: seq})
		seq++
	}

	expanded := 0
	for frontier.Size() > 0 {
		current, _ := frontier.Pop()
		if visited.Has(current.state) {
			continue
		}
		visited.Put(current.state)
		expanded++

		if p.Goal(current.state) {
			return &Result[S]{
				State:    current.state,
				Cost:     current.cost,
				Path:     tracePath(parent, current.state),
				Expanded: expanded,
			}, nil
		}

		for _, edge := range p.Successors(current.state) {
			if edge.Cost < 0 {
				return nil, fmt.Errorf("%w: negative step cost %d from %v", ErrInvalidProblem, edge.Cost, current.state)
			}
			if visited.Has(edge.To) {
				continue
			}

			cost := current.cost + edge.Cost
			if known, ok := best[edge.To]; ok && known <= cost {
				continue
			}
			best[edge.To] = cost
			parent[edge.To] = current.state

			frontier.Push(entry[S]{
				state:    edge.To,
				cost:     cost,
				priority: cost + estimate(edge.To),
				seq:      seq,
			})
			seq++
		}
	}

	return nil, fmt.Errorf("%w: frontier exhausted after %d expansions", ErrNoPathFound, expanded)
}

// tracePath follows parent links back to a start state
func tracePath[S comparable](parent map[S]S, end S) []S {
	path := []S{end}
	for {
		prev, ok := parent[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
