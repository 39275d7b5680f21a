package engine

import "testing"

func TestLayers_ParityOnLine(t *testing.T) {
	step := func(n int) []int { return []int{n - 1, n + 1} }

	for rounds := 0; rounds <= 6; rounds++ {
		layer := Layers([]int{0}, rounds, step)
		if layer.Size() != rounds+1 {
			t.Errorf("rounds=%d: expected %d states, got %d", rounds, rounds+1, layer.Size())
		}

		layer.Each(func(n int) {
			if (n-rounds)%2 != 0 {
				t.Errorf("rounds=%d: state %d has the wrong parity", rounds, n)
			}
		})
		if !layer.Has(rounds) || !layer.Has(-rounds) {
			t.Errorf("rounds=%d: expected both extremes to be reachable", rounds)
		}
	}
}

func TestLayers_StartIsReadmitted(t *testing.T) {
	step := func(n int) []int { return []int{n - 1, n + 1} }

	layer := Layers([]int{0}, 2, step)
	if !layer.Has(0) {
		t.Error("Expected start to be reachable again after two rounds")
	}
	layer = Layers([]int{0}, 3, step)
	if layer.Has(0) {
		t.Error("Expected start to be unreachable after an odd number of rounds")
	}
}

func TestLayers_DeadEnd(t *testing.T) {
	step := func(n int) []int {
		if n >= 2 {
			return nil
		}
		return []int{n + 1}
	}

	if layer := Layers([]int{0}, 5, step); layer.Size() != 0 {
		t.Errorf("Expected empty layer past the dead end, got %d states", layer.Size())
	}
}
