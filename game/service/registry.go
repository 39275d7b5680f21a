package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

var (
	ErrPuzzleNotFound  = errors.New("puzzle not found")
	ErrDuplicatePuzzle = errors.New("puzzle already registered")
	ErrInvalidPuzzle   = errors.New("invalid puzzle")
)

// Registry is a concurrency-safe PuzzleRegistry
type Registry struct {
	mu      sync.RWMutex
	puzzles map[string]*Puzzle
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[string]*Puzzle)}
}

// Register adds a puzzle under its name
func (r *Registry) Register(p *Puzzle) error {
	if p == nil || p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPuzzle)
	}
	if p.Solve == nil {
		return fmt.Errorf("%w: %s has no solver", ErrInvalidPuzzle, p.Name)
	}
	if len(p.Parts) == 0 {
		return fmt.Errorf("%w: %s declares no parts", ErrInvalidPuzzle, p.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.puzzles[p.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePuzzle, p.Name)
	}
	r.puzzles[p.Name] = p
	return nil
}

// Get returns the named puzzle
func (r *Registry) Get(name string) (*Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.puzzles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrPuzzleNotFound, name, strings.Join(r.names(), ", "))
	}
	return p, nil
}

// List returns every registered puzzle sorted by name
func (r *Registry) List() []*PuzzleInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.names()
	infos := make([]*PuzzleInfo, 0, len(names))
	for _, name := range names {
		p := r.puzzles[name]
		infos = append(infos, &PuzzleInfo{
			Name:        p.Name,
			Description: p.Description,
			Parts:       append([]string(nil), p.Parts...),
		})
	}
	return infos
}

// names must be called with r.mu held
func (r *Registry) names() []string {
	names := maps.Keys(r.puzzles)
	slices.Sort(names)
	return names
}
