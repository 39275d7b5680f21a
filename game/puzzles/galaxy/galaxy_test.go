package galaxy

import (
	"errors"
	"math"
	"testing"

	"github.com/wricardo/gridsearch/game/grid"
)

var image = []string{
	"...#......",
	".......#..",
	"#.........",
	"..........",
	"......#...",
	".#........",
	".........#",
	"..........",
	".......#..",
	"#...#.....",
}

func TestSumOfDistances(t *testing.T) {
	img, err := Parse(image)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if img.Galaxies() != 9 {
		t.Fatalf("Expected 9 galaxies, got %d", img.Galaxies())
	}

	tests := []struct {
		factor   int
		expected int
	}{
		{1, 292},
		{2, 374},
		{10, 1030},
		{100, 8410},
	}

	for _, test := range tests {
		got, err := img.SumOfDistances(test.factor)
		if err != nil {
			t.Fatalf("Factor %d: SumOfDistances failed: %v", test.factor, err)
		}
		if got != test.expected {
			t.Errorf("Factor %d: expected %d, got %d", test.factor, test.expected, got)
		}
	}
}

func TestDistance(t *testing.T) {
	img, err := Parse(image)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Galaxies 5 and 9 of the puzzle text
	a := grid.Position{Row: 5, Col: 1}
	b := grid.Position{Row: 9, Col: 4}
	ab, err := img.Distance(a, b, 2)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if ab != 9 {
		t.Errorf("Expected distance 9, got %d", ab)
	}
	if ba, _ := img.Distance(b, a, 2); ab != ba {
		t.Errorf("Expected distance to be symmetric, got %d and %d", ab, ba)
	}
}

func TestSumOfDistances_Overflow(t *testing.T) {
	img, err := Parse(image)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := img.SumOfDistances(math.MaxInt / 4); !errors.Is(err, grid.ErrOverflow) {
		t.Errorf("Expected ErrOverflow, got %v", err)
	}
	if _, err := img.Distance(grid.Position{Row: 0, Col: 3}, grid.Position{Row: 9, Col: 4}, math.MaxInt); !errors.Is(err, grid.ErrOverflow) {
		t.Errorf("Expected ErrOverflow for a single pair, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]string{"..#", ".x."}); !errors.Is(err, grid.ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
}
