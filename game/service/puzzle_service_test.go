package service_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/wricardo/gridsearch/game/config"
	"github.com/wricardo/gridsearch/game/engine"
	"github.com/wricardo/gridsearch/game/grid"
	"github.com/wricardo/gridsearch/game/puzzles/network"
	"github.com/wricardo/gridsearch/game/service"
)

var fixtures = map[string][]string{
	"heatloss": {
		"2413432311323",
		"3215453535623",
		"3255245654254",
		"3446585845452",
		"4546657867536",
		"1438598798454",
		"4457876987766",
		"3637877979653",
		"4654967986887",
		"4564679986453",
		"1224686865563",
		"2546548887735",
		"4322674655533",
	},
	"beam": {
		`.|...\....`,
		`|.-.\.....`,
		`.....|-...`,
		`........|.`,
		`..........`,
		`.........\`,
		`..../.\\..`,
		`.-.-/..|..`,
		`.|....-|.\`,
		`..//.|....`,
	},
	"pipes": {
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	},
	"garden": {
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
	},
	"galaxy": {
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
	},
	"platform": {
		"O....#....",
		"O.OO#....#",
		".....##...",
		"OO.#O....O",
		".O.....O#.",
		"O.#..O.#.#",
		"..O..#O..O",
		".......O..",
		"#....###..",
		"#OO..#....",
	},
	"springs": {
		"???.### 1,1,3",
		".??..??...?##. 1,1,3",
		"?#?#?#?#?#?#?#? 1,3,1,6",
		"????.#...#... 4,1,1",
		"????.######..#####. 1,6,5",
		"?###???????? 3,2,1",
	},
	"pulse": {
		"broadcaster -> a",
		"%a -> inv, con",
		"&inv -> b",
		"%b -> con",
		"&con -> output",
	},
	"network": {
		"LLR",
		"AAA = (BBB, BBB)",
		"BBB = (AAA, ZZZ)",
		"ZZZ = (ZZZ, ZZZ)",
	},
	"schematic": {
		"467..114..",
		"...*......",
		"..35..633.",
		"......#...",
		"617*......",
		".....+.58.",
		"..592.....",
		"......755.",
		"...$.*....",
		".664.598..",
	},
}

func fixtureInput(name string) string {
	return strings.Join(fixtures[name], "\n") + "\n"
}

func newTestService(t *testing.T) service.PuzzleService {
	t.Helper()

	params := config.DefaultParams()
	params.GardenSteps = 6
	params.ExpansionFactor = 100

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc, err := service.NewPuzzleService(service.DefaultRegistry(), params, logger)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	return svc
}

func TestPuzzleService_ListPuzzles(t *testing.T) {
	svc := newTestService(t)

	puzzles, err := svc.ListPuzzles(context.Background())
	if err != nil {
		t.Fatalf("ListPuzzles failed: %v", err)
	}

	expected := []string{"beam", "galaxy", "garden", "heatloss", "network", "pipes", "platform", "pulse", "schematic", "springs"}
	if len(puzzles) != len(expected) {
		t.Fatalf("Expected %d puzzles, got %d", len(expected), len(puzzles))
	}
	for i, p := range puzzles {
		if p.Name != expected[i] {
			t.Errorf("Expected puzzle %d to be %s, got %s", i, expected[i], p.Name)
		}
		if p.Description == "" || len(p.Parts) == 0 {
			t.Errorf("Expected %s to describe itself and its parts", p.Name)
		}
	}
}

func TestPuzzleService_Solve(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		puzzle   string
		expected []int
	}{
		{"heatloss", []int{102, 94}},
		{"beam", []int{46, 51}},
		{"pipes", []int{4, 1}},
		{"garden", []int{16}},
		{"galaxy", []int{374, 8410}},
		{"platform", []int{136, 64}},
		{"springs", []int{21, 525152}},
		{"pulse", []int{11687500}},
		{"network", []int{6, 6}},
		{"schematic", []int{4361, 467835}},
	}

	for _, test := range tests {
		t.Run(test.puzzle, func(t *testing.T) {
			solution, err := svc.Solve(context.Background(), test.puzzle, fixtureInput(test.puzzle))
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}

			if solution.Puzzle != test.puzzle {
				t.Errorf("Expected puzzle %s, got %s", test.puzzle, solution.Puzzle)
			}
			if solution.Rows != len(fixtures[test.puzzle]) {
				t.Errorf("Expected %d rows, got %d", len(fixtures[test.puzzle]), solution.Rows)
			}
			if len(solution.Answers) != len(test.expected) {
				t.Fatalf("Expected %d answers, got %d", len(test.expected), len(solution.Answers))
			}
			for i, answer := range solution.Answers {
				if answer.Value != test.expected[i] {
					t.Errorf("Part %s: expected %d, got %d", answer.Part, test.expected[i], answer.Value)
				}
			}
		})
	}
}

func TestPuzzleService_SolveErrors(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		puzzle   string
		input    string
		expected error
	}{
		{"unknown puzzle", "cubes", "1 red", service.ErrPuzzleNotFound},
		{"malformed grid", "heatloss", "12\n1a", grid.ErrMalformedInput},
		{"ragged rows", "beam", "...\n..", grid.ErrMalformedInput},
		{"empty input", "garden", "\n\n", grid.ErrMalformedInput},
		{"no path", "heatloss", "11111", engine.ErrNoPathFound},
		{"no loop", "pipes", "...\n.S.\n...", engine.ErrNoPathFound},
		{"ghosts only", "network", "L\n11A = (11Z, 11Z)\n11Z = (11B, 11B)\n11B = (11Z, 11Z)\n22A = (22Z, 22Z)\n22Z = (22Z, 22Z)", network.ErrIrregularCycle},
		{"overflow", "springs", "???????????????????? 1,1,1,1,1", grid.ErrOverflow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Solve(context.Background(), test.puzzle, test.input)
			if !errors.Is(err, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestPuzzleService_NetworkWithoutEntry(t *testing.T) {
	svc := newTestService(t)

	input := "LR\n11A = (11B, XXX)\n11B = (XXX, 11Z)\n11Z = (11B, XXX)\n" +
		"22A = (22B, XXX)\n22B = (22C, 22C)\n22C = (22Z, 22Z)\n22Z = (22B, 22B)\nXXX = (XXX, XXX)\n"
	solution, err := svc.Solve(context.Background(), "network", input)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(solution.Answers) != 1 || solution.Answers[0] != (service.Answer{Part: "ghosts", Value: 6}) {
		t.Errorf("Expected only the ghost answer 6, got %+v", solution.Answers)
	}
}

func TestPuzzleService_SolveErrorsAreDistinct(t *testing.T) {
	svc := newTestService(t)

	_, malformed := svc.Solve(context.Background(), "heatloss", "1x")
	_, noPath := svc.Solve(context.Background(), "heatloss", "11111")

	if errors.Is(malformed, engine.ErrNoPathFound) {
		t.Error("Expected malformed input not to look like a missing path")
	}
	if errors.Is(noPath, grid.ErrMalformedInput) {
		t.Error("Expected a missing path not to look like malformed input")
	}
}

func TestPuzzleService_SolveFile(t *testing.T) {
	svc := newTestService(t)

	tmpFile, err := os.CreateTemp(t.TempDir(), "pipes-*.txt")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpFile.WriteString(fixtureInput("pipes")); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()

	solution, err := svc.SolveFile(context.Background(), "pipes", tmpFile.Name())
	if err != nil {
		t.Fatalf("SolveFile failed: %v", err)
	}
	if solution.Answers[0].Value != 4 {
		t.Errorf("Expected farthest point 4, got %d", solution.Answers[0].Value)
	}

	_, err = svc.SolveFile(context.Background(), "pipes", filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist for a missing file, got %v", err)
	}
}

func TestPuzzleService_Cancelled(t *testing.T) {
	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Solve(ctx, "pipes", fixtureInput("pipes")); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, err := svc.ListPuzzles(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled from ListPuzzles, got %v", err)
	}
}

func TestNewPuzzleService_InvalidParams(t *testing.T) {
	params := config.DefaultParams()
	params.Crucible = config.Crucible{Min: 3, Max: 1}

	_, err := service.NewPuzzleService(service.DefaultRegistry(), params, nil)
	if !errors.Is(err, config.ErrInvalidParams) {
		t.Errorf("Expected ErrInvalidParams, got %v", err)
	}
}

func TestNewPuzzleService_DefaultParams(t *testing.T) {
	svc, err := service.NewPuzzleService(service.DefaultRegistry(), nil, nil)
	if err != nil {
		t.Fatalf("Expected nil params to fall back to defaults, got %v", err)
	}

	// 64 steps on the sample garden reach 42 plots
	solution, err := svc.Solve(context.Background(), "garden", fixtureInput("garden"))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solution.Answers[0].Value != 42 {
		t.Errorf("Expected 42 plots after 64 steps, got %d", solution.Answers[0].Value)
	}
}
