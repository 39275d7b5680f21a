package garden

import (
	"errors"
	"strings"
	"testing"

	"github.com/wricardo/gridsearch/game/grid"
)

var sample = []string{
	"...........",
	".....###.#.",
	".###.##..#.",
	"..#.#...#..",
	"....#.#....",
	".##..S####.",
	".##..#...#.",
	".......##..",
	".##.#.####.",
	".##..##.##.",
	"...........",
}

func mustParse(t *testing.T, lines []string) *Garden {
	t.Helper()
	g, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func openField(size int) []string {
	lines := make([]string, size)
	for i := range lines {
		row := []byte(strings.Repeat(".", size))
		if i == size/2 {
			row[size/2] = 'S'
		}
		lines[i] = string(row)
	}
	return lines
}

func TestReachable_Sample(t *testing.T) {
	g := mustParse(t, sample)

	tests := []struct {
		steps    int
		expected int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 6},
		{6, 16},
	}

	for _, test := range tests {
		if got := g.Reachable(test.steps); got != test.expected {
			t.Errorf("Steps %d: expected %d plots, got %d", test.steps, test.expected, got)
		}
	}
}

func TestReachable_OpenFieldParity(t *testing.T) {
	g := mustParse(t, openField(21))

	for k := 0; k <= 10; k++ {
		expected := 0
		for dr := -k; dr <= k; dr++ {
			for dc := -k; dc <= k; dc++ {
				d := grid.Abs(dr) + grid.Abs(dc)
				if d <= k && d%2 == k%2 {
					expected++
				}
			}
		}

		if got := g.Reachable(k); got != expected {
			t.Errorf("Steps %d: expected %d plots, got %d", k, expected, got)
		}
		if expected != (k+1)*(k+1) {
			t.Errorf("Steps %d: lattice count %d is not (k+1)^2", k, expected)
		}
	}
}

func TestPositions_StartReadmitted(t *testing.T) {
	g := mustParse(t, sample)
	start := grid.Position{Row: 5, Col: 5}

	for steps := 0; steps <= 8; steps += 2 {
		if !g.Positions(steps).Has(start) {
			t.Errorf("Expected start to be reachable after %d steps", steps)
		}
	}
	if g.Positions(3).Has(start) {
		t.Error("Expected start to be unreachable after an odd number of steps")
	}
}

func TestReachable_Enclosed(t *testing.T) {
	g := mustParse(t, []string{"###", "#S#", "###"})

	if got := g.Reachable(0); got != 1 {
		t.Errorf("Expected 1 plot at step 0, got %d", got)
	}
	if got := g.Reachable(1); got != 0 {
		t.Errorf("Expected no plots after a step from an enclosed start, got %d", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no start", []string{"...", "..."}},
		{"two starts", []string{"S..", "..S"}},
		{"unknown tile", []string{"S.x"}},
		{"ragged", []string{"S..", ".."}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Parse(test.lines); !errors.Is(err, grid.ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput, got %v", err)
			}
		})
	}
}
