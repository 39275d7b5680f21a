// Package pulse simulates low and high pulses travelling through a network
// of communication modules.
//
// Modules are wired with lines such as
//
//	broadcaster -> a, b
//	%a -> inv
//	&inv -> b
//
// A flip-flop (%) ignores high pulses and toggles on a low pulse, sending
// high when it turns on and low when it turns off. A conjunction (&)
// remembers the last pulse from each input and sends low only when all of
// them were high. The broadcaster repeats its input to every output.
//
// Pulses are processed strictly in the order they were sent. A Machine owns
// all mutable module state and drains a single FIFO work-list per button
// press.
package pulse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wricardo/gridsearch/game/grid"
)

// Broadcaster is the module the button sends its low pulse to
const Broadcaster = "broadcaster"

// Kind is the behavior of a module
type Kind int

const (
	Sink Kind = iota
	Broadcast
	FlipFlop
	Conjunction
)

func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return "sink"
}

// Module is a node of the network
type Module struct {
	Name    string
	Kind    Kind
	Outputs []string
}

// Network is an immutable module graph
type Network struct {
	modules map[string]*Module
	inputs  map[string][]string
}

// Parse reads one module definition per line
func Parse(lines []string) (*Network, error) {
	n := &Network{
		modules: make(map[string]*Module),
		inputs:  make(map[string][]string),
	}

	for i, line := range lines {
		m, err := parseModule(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", grid.ErrMalformedInput, i+1, err)
		}
		if _, dup := n.modules[m.Name]; dup {
			return nil, fmt.Errorf("%w: line %d: module %q defined twice", grid.ErrMalformedInput, i+1, m.Name)
		}
		n.modules[m.Name] = m
	}

	if _, ok := n.modules[Broadcaster]; !ok {
		return nil, fmt.Errorf("%w: no %s module", grid.ErrMalformedInput, Broadcaster)
	}

	for _, m := range n.modules {
		for _, out := range m.Outputs {
			n.inputs[out] = append(n.inputs[out], m.Name)
		}
	}
	for name := range n.inputs {
		sort.Strings(n.inputs[name])
	}

	return n, nil
}

func parseModule(line string) (*Module, error) {
	name, targets, ok := strings.Cut(line, "->")
	if !ok {
		return nil, fmt.Errorf("missing '->' in %q", line)
	}
	name = strings.TrimSpace(name)

	m := &Module{Kind: Sink}
	switch {
	case name == Broadcaster:
		m.Kind = Broadcast
	case strings.HasPrefix(name, "%"):
		m.Kind = FlipFlop
		name = name[1:]
	case strings.HasPrefix(name, "&"):
		m.Kind = Conjunction
		name = name[1:]
	default:
		return nil, fmt.Errorf("unknown module type %q", name)
	}
	if name == "" {
		return nil, fmt.Errorf("empty module name in %q", line)
	}
	m.Name = name

	for _, target := range strings.Split(targets, ",") {
		target = strings.TrimSpace(target)
		if target == "" {
			return nil, fmt.Errorf("empty output in %q", line)
		}
		m.Outputs = append(m.Outputs, target)
	}
	return m, nil
}

// Module returns the named module. Names that are only ever targeted are
// reported as sinks.
func (n *Network) Module(name string) (*Module, bool) {
	if m, ok := n.modules[name]; ok {
		return m, true
	}
	if _, ok := n.inputs[name]; ok {
		return &Module{Name: name, Kind: Sink}, true
	}
	return nil, false
}

// Inputs returns the modules wired into name, sorted
func (n *Network) Inputs(name string) []string {
	return n.inputs[name]
}
