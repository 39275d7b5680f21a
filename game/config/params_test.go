package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultParams_Valid(t *testing.T) {
	params := DefaultParams()
	if err := ValidateParams(params); err != nil {
		t.Errorf("Expected default params to pass validation, got: %v", err)
	}

	if params.Crucible != (Crucible{Min: 1, Max: 3}) {
		t.Errorf("Expected crucible 1..3, got %v", params.Crucible)
	}
	if params.UltraCrucible != (Crucible{Min: 4, Max: 10}) {
		t.Errorf("Expected ultra crucible 4..10, got %v", params.UltraCrucible)
	}
	if params.GardenSteps != 64 {
		t.Errorf("Expected 64 garden steps, got %d", params.GardenSteps)
	}
}

func TestValidateParams_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		message string
	}{
		{"crucible min above max", func(p *Params) { p.Crucible = Crucible{Min: 5, Max: 3} }, "cannot exceed max"},
		{"crucible min zero", func(p *Params) { p.UltraCrucible.Min = 0 }, "ultra_crucible must be within"},
		{"negative garden steps", func(p *Params) { p.GardenSteps = -1 }, "garden_steps"},
		{"zero expansion", func(p *Params) { p.ExpansionFactor = 0 }, "expansion_factor"},
		{"huge expansion", func(p *Params) { p.ExpansionFactor = MaxExpansion + 1 }, "expansion_factor"},
		{"too many copies", func(p *Params) { p.UnfoldCopies = 11 }, "unfold_copies"},
		{"negative presses", func(p *Params) { p.ButtonPresses = -3 }, "button_presses"},
		{"negative cycles", func(p *Params) { p.SpinCycles = -1 }, "spin_cycles"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := DefaultParams()
			test.mutate(params)

			err := ValidateParams(params)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Expected ErrInvalidParams, got %v", err)
			}
			if !strings.Contains(err.Error(), test.message) {
				t.Errorf("Expected error to mention %q, got: %v", test.message, err)
			}
		})
	}
}

func TestValidateParams_Nil(t *testing.T) {
	if err := ValidateParams(nil); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Expected ErrInvalidParams for nil params, got %v", err)
	}
}

func writeParamsFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write params file: %v", err)
	}
	return path
}

func TestLoadParams_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeParamsFile(t, dir, "small.json", `{"garden_steps": 6, "ultra_crucible": {"min": 2, "max": 5}}`)

	params, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams failed: %v", err)
	}
	if params.GardenSteps != 6 {
		t.Errorf("Expected garden steps 6, got %d", params.GardenSteps)
	}
	if params.UltraCrucible != (Crucible{Min: 2, Max: 5}) {
		t.Errorf("Expected ultra crucible 2..5, got %v", params.UltraCrucible)
	}
	if params.ButtonPresses != 1000 {
		t.Errorf("Expected untouched button presses to keep default 1000, got %d", params.ButtonPresses)
	}
}

func TestLoadParams_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeParamsFile(t, dir, "sample.json", `{"expansion_factor": 10}`)
	t.Setenv("CONFIG_DIR", dir)

	params, err := LoadParams("sample")
	if err != nil {
		t.Fatalf("LoadParams failed: %v", err)
	}
	if params.ExpansionFactor != 10 {
		t.Errorf("Expected expansion factor 10, got %d", params.ExpansionFactor)
	}
}

func TestLoadParams_Errors(t *testing.T) {
	dir := t.TempDir()
	badJSON := writeParamsFile(t, dir, "bad.json", `{"garden_steps": oops}`)
	invalid := writeParamsFile(t, dir, "invalid.json", `{"crucible": {"min": 4, "max": 2}}`)

	tests := []struct {
		name     string
		path     string
		expected error
	}{
		{"missing file", filepath.Join(dir, "missing.json"), ErrParamsNotFound},
		{"bad json", badJSON, ErrInvalidParams},
		{"failed validation", invalid, ErrInvalidParams},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadParams(test.path)
			if !errors.Is(err, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, err)
			}
		})
	}
}
