package engine

import "github.com/zyedidia/generic/mapset"

// Layers returns the set of states reachable in exactly rounds steps.
//
// Each round replaces the current layer with the union of one-step successors
// of every state in it. A state can leave a layer and come back in a later
// one, so walks that may step back and forth keep the parity of the round
// count instead of accumulating every state ever seen.
func Layers[S comparable](start []S, rounds int, step func(S) []S) mapset.Set[S] {
	layer := mapset.New[S]()
	for _, s := range start {
		layer.Put(s)
	}

	for round := 0; round < rounds && layer.Size() > 0; round++ {
		next := mapset.New[S]()
		layer.Each(func(s S) {
			for _, n := range step(s) {
				next.Put(n)
			}
		})
		layer = next
	}

	return layer
}
