package engine

import "github.com/zyedidia/generic/mapset"

// Order selects how the flood work-list is consumed
type Order int

const (
	Stack Order = iota // last in, first out
	Queue              // first in, first out
)

func (o Order) String() string {
	switch o {
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	}
	return "unknown"
}

// FloodOptions describes a reachability flood.
//
// Every state is expanded at most once, which guarantees termination when
// the transition graph has cycles. Touched records Key(state) for every
// expanded state, so several states may collapse into one touched key.
type FloodOptions[S comparable, K comparable] struct {
	Start []S
	Step  func(S) []S
	Key   func(S) K
	Order Order
	Limit int // maximum expansions; 0 runs until the work-list is empty
}

// FloodResult is the outcome of a flood
type FloodResult[K comparable] struct {
	Touched   mapset.Set[K]
	Expanded  int
	Exhausted bool // the work-list emptied before Limit was reached
}

// Flood expands states reachable from Start and reports the distinct keys it
// touched. With no limit the result is a fixpoint and does not depend on Order.
func Flood[S comparable, K comparable](opts FloodOptions[S, K]) FloodResult[K] {
	touched := mapset.New[K]()
	seen := mapset.New[S]()
	work := &worklist[S]{order: opts.Order}

	for _, s := range opts.Start {
		if seen.Has(s) {
			continue
		}
		seen.Put(s)
		work.push(s)
	}

	expanded := 0
	for work.len() > 0 {
		if opts.Limit > 0 && expanded >= opts.Limit {
			return FloodResult[K]{Touched: touched, Expanded: expanded}
		}

		current := work.pop()
		expanded++
		touched.Put(opts.Key(current))

		for _, next := range opts.Step(current) {
			if seen.Has(next) {
				continue
			}
			seen.Put(next)
			work.push(next)
		}
	}

	return FloodResult[K]{Touched: touched, Expanded: expanded, Exhausted: true}
}

// worklist is a slice-backed stack or queue
type worklist[S any] struct {
	order Order
	items []S
	head  int
}

func (w *worklist[S]) len() int {
	return len(w.items) - w.head
}

func (w *worklist[S]) push(s S) {
	w.items = append(w.items, s)
}

func (w *worklist[S]) pop() S {
	if w.order == Queue {
		s := w.items[w.head]
		w.head++
		if w.head == len(w.items) {
			w.items = w.items[:0]
			w.head = 0
		}
		return s
	}

	last := len(w.items) - 1
	s := w.items[last]
	w.items = w.items[:last]
	return s
}
