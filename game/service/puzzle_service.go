package service

import (
	"context"
)

// PuzzleService defines all solving operations
type PuzzleService interface {
	ListPuzzles(ctx context.Context) ([]*PuzzleInfo, error)
	Solve(ctx context.Context, name, input string) (*Solution, error)
	SolveFile(ctx context.Context, name, path string) (*Solution, error)
}

// PuzzleRegistry looks up registered puzzles
type PuzzleRegistry interface {
	Get(name string) (*Puzzle, error)
	List() []*PuzzleInfo
}
