package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/wricardo/gridsearch/game/grid"
)

func TestAnalyze_Grid(t *testing.T) {
	analysis, err := analyze([]string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if analysis.Rows != 5 || analysis.Cols != 5 {
		t.Errorf("Expected 5x5, got %dx%d", analysis.Rows, analysis.Cols)
	}
	if analysis.Histogram[0] != (TokenCount{Token: '.', Count: 17}) {
		t.Errorf("Expected '.' to be the most common token with 17, got %+v", analysis.Histogram[0])
	}
	if !reflect.DeepEqual(analysis.Starts, []grid.Position{{Row: 1, Col: 1}}) {
		t.Errorf("Expected start at (1,1), got %v", analysis.Starts)
	}
	if !reflect.DeepEqual(analysis.Candidates, []string{"pipes"}) {
		t.Errorf("Expected only pipes to match, got %v", analysis.Candidates)
	}
}

func TestAnalyze_Candidates(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{"digits", []string{"241", "321"}, []string{"heatloss"}},
		{"galaxies", []string{"#..", "..#"}, []string{"garden", "galaxy", "platform"}},
		{"rocks", []string{"O.#", "O.."}, []string{"platform"}},
		{"mirrors", []string{`.\.`, "|-/"}, []string{"beam"}},
		{"unknown", []string{"xyz"}, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			analysis, err := analyze(test.lines)
			if err != nil {
				t.Fatalf("analyze failed: %v", err)
			}
			if !reflect.DeepEqual(analysis.Candidates, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, analysis.Candidates)
			}
		})
	}
}

func TestAnalyze_Ragged(t *testing.T) {
	analysis, err := analyze([]string{"???.### 1,1,3", ".??..??...?##. 1,1,3"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !reflect.DeepEqual(analysis.Ragged, []int{2}) {
		t.Errorf("Expected row 2 to be ragged, got %v", analysis.Ragged)
	}

	var out bytes.Buffer
	report(&out, analysis)
	if !strings.Contains(out.String(), "Not a grid") {
		t.Errorf("Expected ragged warning, got: %s", out.String())
	}
}

func TestAnalyze_Empty(t *testing.T) {
	if _, err := analyze(nil); !errors.Is(err, grid.ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
}

func TestAnalyzeFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "garden.txt")
	if err := os.WriteFile(path, []byte("...\n.S#\n...\n"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	var out bytes.Buffer
	if err := analyzeFile(&out, path); err != nil {
		t.Fatalf("analyzeFile failed: %v", err)
	}

	for _, expected := range []string{"Rows: 3", "Columns: 3", "Grid is rectangular", "Start: (1,1)", "Matching puzzles: garden"} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("Expected %q in report, got: %s", expected, out.String())
		}
	}
}

func TestAnalyzeFile_Missing(t *testing.T) {
	var out bytes.Buffer
	if err := analyzeFile(&out, filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
