// Package grid provides the immutable 2-D grid model shared by every puzzle.
//
// The grid package implements:
//   - Rectangular, row-major grids of puzzle-specific cell values
//   - Bounds-checked cell access and deterministic neighbor queries
//   - Directions with turning and reversal helpers
//   - Parsing of text layouts with per-token decoding
//
// Core Types:
//
// Grid holds the cells and is read-only after construction. Position is a
// (row, col) coordinate, 0-indexed from the top-left corner. Direction is one
// of Up, Left, Down, Right; that order is also the order in which
// Neighbors4 reports adjacent positions.
//
// Usage:
//
//	var start grid.Position
//	g, err := grid.Parse(grid.Lines(input), func(r rune, pos grid.Position) (Tile, error) {
//		if r == 'S' {
//			start = pos
//		}
//		return decodeTile(r)
//	})
//	if err != nil {
//		return err // wraps grid.ErrMalformedInput
//	}
//
//	for _, next := range g.Neighbors4(start) {
//		cell, _ := g.At(next)
//		...
//	}
//
// Errors:
//
// Parse and New fail with ErrMalformedInput when rows have inconsistent
// lengths, the input is empty, or a token is not recognized. Get fails with
// ErrOutOfBounds for coordinates outside the grid.
package grid
