package engine

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Walk follows a chain in which every state has at most one successor. It
// starts after start and stops at the first state accepted by done, returning
// the states visited along the way (the final one included).
//
// A dead end, or a chain that repeats a state before reaching done, fails
// with ErrNoPathFound.
func Walk[S comparable](start S, next func(S) (S, bool), done func(S) bool) ([]S, error) {
	seen := mapset.New[S]()
	seen.Put(start)

	var path []S
	current := start
	for {
		following, ok := next(current)
		if !ok {
			return path, fmt.Errorf("%w: dead end after %d steps at %v", ErrNoPathFound, len(path), current)
		}
		path = append(path, following)

		if done(following) {
			return path, nil
		}
		if seen.Has(following) {
			return path, fmt.Errorf("%w: walk revisited %v without finishing", ErrNoPathFound, following)
		}
		seen.Put(following)
		current = following
	}
}
