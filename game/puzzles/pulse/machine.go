package pulse

import (
	"github.com/zyedidia/generic/queue"
)

// Signal is a pulse in flight
type Signal struct {
	From string
	To   string
	High bool
}

// Counts tallies the pulses sent
type Counts struct {
	Low  int
	High int
}

// Product is the low count times the high count
func (c Counts) Product() int {
	return c.Low * c.High
}

// Machine is the mutable state of a network: flip-flop switches and
// conjunction memories.
type Machine struct {
	network *Network
	on      map[string]bool
	memory  map[string]map[string]bool
	counts  Counts
	presses int
}

// NewMachine returns a machine with every flip-flop off and every
// conjunction remembering low pulses.
func (n *Network) NewMachine() *Machine {
	m := &Machine{
		network: n,
		on:      make(map[string]bool),
		memory:  make(map[string]map[string]bool),
	}
	for name, mod := range n.modules {
		if mod.Kind == Conjunction {
			m.memory[name] = make(map[string]bool, len(n.inputs[name]))
			for _, in := range n.inputs[name] {
				m.memory[name][in] = false
			}
		}
	}
	return m
}

// Press pushes the button once and drains every resulting pulse. observe,
// when not nil, sees each signal as it is delivered.
func (m *Machine) Press(observe func(Signal)) Counts {
	var counts Counts
	work := queue.New[Signal]()
	work.Enqueue(Signal{From: "button", To: Broadcaster})

	for !work.Empty() {
		s := work.Dequeue()
		if s.High {
			counts.High++
		} else {
			counts.Low++
		}
		if observe != nil {
			observe(s)
		}

		for _, next := range m.deliver(s) {
			work.Enqueue(next)
		}
	}

	m.presses++
	m.counts.Low += counts.Low
	m.counts.High += counts.High
	return counts
}

// deliver applies s to its target and returns the pulses the target sends
func (m *Machine) deliver(s Signal) []Signal {
	mod, ok := m.network.modules[s.To]
	if !ok {
		return nil
	}

	var high bool
	switch mod.Kind {
	case Broadcast:
		high = s.High
	case FlipFlop:
		if s.High {
			return nil
		}
		m.on[mod.Name] = !m.on[mod.Name]
		high = m.on[mod.Name]
	case Conjunction:
		memory := m.memory[mod.Name]
		memory[s.From] = s.High
		high = false
		for _, last := range memory {
			if !last {
				high = true
				break
			}
		}
	default:
		return nil
	}

	out := make([]Signal, len(mod.Outputs))
	for i, target := range mod.Outputs {
		out[i] = Signal{From: mod.Name, To: target, High: high}
	}
	return out
}

// Counts returns the pulses sent across every press so far
func (m *Machine) Counts() Counts {
	return m.counts
}

// Presses returns how many times the button was pushed
func (m *Machine) Presses() int {
	return m.presses
}

// Press runs a fresh machine for the given number of button presses
func (n *Network) Press(presses int) Counts {
	m := n.NewMachine()
	for i := 0; i < presses; i++ {
		m.Press(nil)
	}
	return m.Counts()
}
