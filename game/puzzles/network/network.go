// Package network follows left/right instructions through a network of
// labelled nodes.
//
// The first line lists the instructions (L and R), repeated forever. Every
// other line names a node and the nodes reached by taking its left and right
// exits:
//
//	RL
//	AAA = (BBB, CCC)
//	BBB = (DDD, EEE)
//
// A walker is identified by its node and its position in the instruction
// list, so a walk that never reaches its target repeats a state and is
// reported as engine.ErrNoPathFound instead of looping forever.
package network

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/wricardo/gridsearch/game/engine"
	"github.com/wricardo/gridsearch/game/grid"
)

// Side is an exit taken from a node
type Side int

const (
	Left Side = iota
	Right
)

const (
	// Entry and Exit are the nodes a single walker travels between
	Entry = "AAA"
	Exit  = "ZZZ"
)

var (
	ErrUnknownNode = errors.New("unknown node")
	// ErrIrregularCycle means a ghost does not revisit its exit on a fixed
	// period, so the lockstep answer cannot be derived from single walks.
	ErrIrregularCycle = errors.New("irregular ghost cycle")
)

// Map is a parsed instruction list and node network
type Map struct {
	instructions []Side
	nodes        map[string][2]string
}

type walker struct {
	node string
	step int
}

// Parse reads the instruction line followed by one node per line
func Parse(lines []string) (*Map, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: expected instructions and at least one node", grid.ErrMalformedInput)
	}

	m := &Map{nodes: make(map[string][2]string, len(lines)-1)}
	for i, r := range strings.TrimSpace(lines[0]) {
		switch r {
		case 'L':
			m.instructions = append(m.instructions, Left)
		case 'R':
			m.instructions = append(m.instructions, Right)
		default:
			return nil, fmt.Errorf("%w: instruction %d is %q, expected L or R", grid.ErrMalformedInput, i+1, r)
		}
	}
	if len(m.instructions) == 0 {
		return nil, fmt.Errorf("%w: empty instruction line", grid.ErrMalformedInput)
	}

	for i, line := range lines[1:] {
		name, exits, err := parseNode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", grid.ErrMalformedInput, i+2, err)
		}
		if _, ok := m.nodes[name]; ok {
			return nil, fmt.Errorf("%w: line %d: node %s defined twice", grid.ErrMalformedInput, i+2, name)
		}
		m.nodes[name] = exits
	}

	for name, exits := range m.nodes {
		for _, next := range exits {
			if _, ok := m.nodes[next]; !ok {
				return nil, fmt.Errorf("%w: node %s leads to undefined %s", grid.ErrMalformedInput, name, next)
			}
		}
	}
	return m, nil
}

// parseNode reads "AAA = (BBB, CCC)"
func parseNode(line string) (string, [2]string, error) {
	name, rest, ok := strings.Cut(line, "=")
	rest = strings.TrimSpace(rest)
	if !ok || !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", [2]string{}, fmt.Errorf("expected NAME = (LEFT, RIGHT), got %q", line)
	}

	left, right, ok := strings.Cut(rest[1:len(rest)-1], ",")
	exits := [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}
	name = strings.TrimSpace(name)
	if !ok || name == "" || exits[Left] == "" || exits[Right] == "" {
		return "", [2]string{}, fmt.Errorf("expected NAME = (LEFT, RIGHT), got %q", line)
	}
	return name, exits, nil
}

// Instructions returns the length of the instruction list
func (m *Map) Instructions() int {
	return len(m.instructions)
}

// Has reports whether the network defines the node
func (m *Map) Has(name string) bool {
	_, ok := m.nodes[name]
	return ok
}

// Nodes returns every node name in sorted order
func (m *Map) Nodes() []string {
	names := maps.Keys(m.nodes)
	slices.Sort(names)
	return names
}

func (m *Map) next(w walker) (walker, bool) {
	side := m.instructions[w.step]
	return walker{node: m.nodes[w.node][side], step: (w.step + 1) % len(m.instructions)}, true
}

// Steps counts the steps from the named node to the first node accepted by
// done. The starting node itself is never accepted.
func (m *Map) Steps(from string, done func(node string) bool) (int, error) {
	steps, _, err := m.walk(walker{node: from}, done)
	return steps, err
}

func (m *Map) walk(start walker, done func(node string) bool) (int, walker, error) {
	if !m.Has(start.node) {
		return 0, walker{}, fmt.Errorf("%w: %s", ErrUnknownNode, start.node)
	}

	path, err := engine.Walk(start, m.next, func(w walker) bool { return done(w.node) })
	if err != nil {
		return 0, walker{}, fmt.Errorf("from %s: %w", start.node, err)
	}
	return len(path), path[len(path)-1], nil
}

// CamelSteps walks from Entry to Exit
func (m *Map) CamelSteps() (int, error) {
	return m.Steps(Entry, func(node string) bool { return node == Exit })
}

// GhostSteps walks one ghost from every node ending in A at once and counts
// the steps until all of them stand on nodes ending in Z.
//
// Each ghost is walked alone to its first Z node. A lone ghost is done there.
// Otherwise every ghost walks one more lap: when the lap takes as long as the
// first leg the ghost reaches a Z node on every multiple of that length, and
// the answer is the least common multiple of the leg lengths. Any other
// shape fails with ErrIrregularCycle.
func (m *Map) GhostSteps() (int, error) {
	atExit := func(node string) bool { return strings.HasSuffix(node, "Z") }

	var legs []int
	var ends []walker
	var starts []string
	for _, name := range m.Nodes() {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		steps, end, err := m.walk(walker{node: name}, atExit)
		if err != nil {
			return 0, err
		}
		legs = append(legs, steps)
		ends = append(ends, end)
		starts = append(starts, name)
	}

	switch len(legs) {
	case 0:
		return 0, fmt.Errorf("%w: no node ends in A", engine.ErrNoPathFound)
	case 1:
		return legs[0], nil
	}

	total := 1
	for i, leg := range legs {
		lap, _, err := m.walk(ends[i], atExit)
		if err != nil {
			return 0, err
		}
		if lap != leg {
			return 0, fmt.Errorf("%w: ghost from %s reaches Z after %d steps, then after %d more",
				ErrIrregularCycle, starts[i], leg, lap)
		}
		if total, err = lcm(total, leg); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) (int, error) {
	return grid.CheckedMul(a/gcd(a, b), b)
}
