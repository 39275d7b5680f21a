package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wricardo/gridsearch/game/config"
	"github.com/wricardo/gridsearch/game/grid"
)

// puzzleServiceImpl implements the PuzzleService interface
type puzzleServiceImpl struct {
	registry PuzzleRegistry
	params   *config.Params
	log      *logrus.Logger
}

// NewPuzzleService creates a service that solves puzzles from registry with
// the given parameters. A nil logger falls back to the logrus standard logger.
func NewPuzzleService(registry PuzzleRegistry, params *config.Params, logger *logrus.Logger) (PuzzleService, error) {
	if params == nil {
		params = config.DefaultParams()
	}
	if err := config.ValidateParams(params); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &puzzleServiceImpl{
		registry: registry,
		params:   params,
		log:      logger,
	}, nil
}

// ListPuzzles returns every registered puzzle
func (s *puzzleServiceImpl) ListPuzzles(ctx context.Context) ([]*PuzzleInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.registry.List(), nil
}

// Solve parses input and answers every part of the named puzzle
func (s *puzzleServiceImpl) Solve(ctx context.Context, name, input string) (*Solution, error) {
	puzzle, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := grid.Lines(input)
	entry := s.log.WithFields(logrus.Fields{
		"puzzle": name,
		"rows":   len(lines),
	})
	entry.Debug("solving puzzle")

	start := time.Now()
	answers, err := puzzle.Solve(ctx, lines, s.params)
	elapsed := time.Since(start)
	if err != nil {
		entry.WithError(err).Warn("puzzle failed")
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	entry.WithFields(logrus.Fields{
		"answers":  len(answers),
		"duration": elapsed.Round(time.Microsecond),
	}).Info("puzzle solved")

	return &Solution{
		Puzzle:   name,
		Answers:  answers,
		Rows:     len(lines),
		Duration: elapsed,
	}, nil
}

// SolveFile reads the input file fully and solves it
func (s *puzzleServiceImpl) SolveFile(ctx context.Context, name, path string) (*Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"puzzle": name,
		"path":   path,
		"bytes":  len(data),
	}).Debug("read input file")

	return s.Solve(ctx, name, string(data))
}
