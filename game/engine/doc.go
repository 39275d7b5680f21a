// Package engine provides the generic state-space search used by the grid puzzles.
//
// The engine package implements:
//   - Best-cost search over a priority frontier with lazy deletion (Dijkstra,
//     or A* when an admissible heuristic is supplied)
//   - Exact-depth layer search in synchronized rounds
//   - Reachability flooding with a cycle-breaking visited set
//   - Single-successor walks for loop tracing
//
// The engine knows nothing about cells, tiles or directions. Callers describe
// a search with an augmented state type S (any comparable value, typically a
// position plus history such as heading and run length) and closures that
// produce successors. Accumulated cost is never part of S; two states that
// differ only by how expensive they were to reach are the same state.
//
// Usage:
//
//	result, err := engine.BestCost(engine.Problem[state]{
//		Start:      []state{{pos: origin, dir: grid.Right}},
//		Successors: puzzle.successors,
//		Goal:       func(s state) bool { return s.pos == target },
//	})
//	if errors.Is(err, engine.ErrNoPathFound) {
//		...
//	}
//
// Resources:
//
// Every call owns its frontier and visited set and discards them on return.
// Nothing is shared between calls, and no call performs I/O.
package engine
