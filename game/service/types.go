package service

import (
	"context"
	"time"

	"github.com/wricardo/gridsearch/game/config"
)

// Solver parses puzzle lines and computes the answers of every part
type Solver func(ctx context.Context, lines []string, params *config.Params) ([]Answer, error)

// Puzzle is a registered puzzle
type Puzzle struct {
	Name        string
	Description string
	Parts       []string
	Solve       Solver
}

// PuzzleInfo describes a puzzle for listings
type PuzzleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Parts       []string `json:"parts"`
}

// Answer is the result of one puzzle part
type Answer struct {
	Part  string `json:"part"`
	Value int    `json:"value"`
}

// Solution contains every answer of a solved puzzle
type Solution struct {
	Puzzle   string        `json:"puzzle"`
	Answers  []Answer      `json:"answers"`
	Rows     int           `json:"rows"`
	Duration time.Duration `json:"duration"`
}
