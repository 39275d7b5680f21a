// Command analyze prints quick, human-readable facts about puzzle input files.
// It summarizes dimensions, a token histogram, start tiles and the grid
// puzzles whose alphabet matches the file, and warns about ragged rows.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/wricardo/gridsearch/game/grid"
)

// alphabets lists the tokens each grid puzzle accepts
var alphabets = []struct {
	puzzle string
	tokens string
}{
	{"heatloss", "0123456789"},
	{"beam", `./\|-`},
	{"pipes", "S.|-LJ7F"},
	{"garden", "S.#"},
	{"galaxy", ".#"},
	{"platform", "O#."},
}

// TokenCount is one histogram bucket
type TokenCount struct {
	Token rune
	Count int
}

// Analysis summarizes a single input file
type Analysis struct {
	Rows       int
	Cols       int
	Ragged     []int // 1-based rows whose length differs from the first row
	Histogram  []TokenCount
	Starts     []grid.Position
	Candidates []string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: analyze <input> [input...]")
		os.Exit(1)
	}

	failed := false
	for _, path := range os.Args[1:] {
		fmt.Printf("\n=== Analyzing %s ===\n", path)
		if err := analyzeFile(os.Stdout, path); err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func analyzeFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	analysis, err := analyze(grid.Lines(string(data)))
	if err != nil {
		return err
	}
	report(w, analysis)
	return nil
}

func analyze(lines []string) (*Analysis, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: file has no rows", grid.ErrMalformedInput)
	}

	a := &Analysis{Rows: len(lines), Cols: len([]rune(lines[0]))}
	counts := make(map[rune]int)
	for i, line := range lines {
		if n := len([]rune(line)); n != a.Cols {
			a.Ragged = append(a.Ragged, i+1)
		}
		for _, r := range line {
			counts[r]++
		}
	}

	for token, count := range counts {
		a.Histogram = append(a.Histogram, TokenCount{Token: token, Count: count})
	}
	sort.Slice(a.Histogram, func(i, j int) bool {
		if a.Histogram[i].Count != a.Histogram[j].Count {
			return a.Histogram[i].Count > a.Histogram[j].Count
		}
		return a.Histogram[i].Token < a.Histogram[j].Token
	})

	if len(a.Ragged) > 0 {
		return a, nil
	}

	g, err := grid.Parse(lines, func(r rune, _ grid.Position) (rune, error) { return r, nil })
	if err != nil {
		return nil, err
	}
	a.Starts = g.Find(func(r rune) bool { return r == 'S' })

	for _, alphabet := range alphabets {
		fits := true
		for token := range counts {
			if !strings.ContainsRune(alphabet.tokens, token) {
				fits = false
				break
			}
		}
		if fits {
			a.Candidates = append(a.Candidates, alphabet.puzzle)
		}
	}
	return a, nil
}

func report(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Rows: %d\n", a.Rows)
	fmt.Fprintf(w, "Columns: %d\n", a.Cols)

	fmt.Fprintf(w, "Tokens:\n")
	for _, tc := range a.Histogram {
		fmt.Fprintf(w, "   %q: %d\n", tc.Token, tc.Count)
	}

	if len(a.Ragged) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d rows differ in length from the first row\n", len(a.Ragged))
		for i, row := range a.Ragged {
			if i < 5 {
				fmt.Fprintf(w, "   Ragged row: %d\n", row)
			}
		}
		if len(a.Ragged) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(a.Ragged)-5)
		}
		fmt.Fprintf(w, "Not a grid; record-style puzzles (springs, pulse) may still accept it\n")
		return
	}

	fmt.Fprintf(w, "✅ Grid is rectangular\n")
	switch len(a.Starts) {
	case 0:
	case 1:
		fmt.Fprintf(w, "Start: %v\n", a.Starts[0])
	default:
		fmt.Fprintf(w, "⚠️  WARNING: %d start tiles found\n", len(a.Starts))
	}

	if len(a.Candidates) == 0 {
		fmt.Fprintf(w, "No grid puzzle accepts every token\n")
		return
	}
	fmt.Fprintf(w, "Matching puzzles: %s\n", strings.Join(a.Candidates, ", "))
}
