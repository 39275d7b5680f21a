package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrParamsNotFound = errors.New("params file not found")
	ErrInvalidParams  = errors.New("invalid params")
)

const (
	// Validation constants
	MinStraightRun  = 1
	MaxStraightRun  = 100
	MaxGardenSteps  = 1 << 20
	MinExpansion    = 1
	MaxExpansion    = 1000000000
	MaxUnfoldCopies = 10
	MaxPresses      = 1 << 20
)

// Crucible bounds the number of consecutive straight steps. A crucible must
// travel at least Min blocks before turning or stopping and may not travel
// more than Max blocks in a straight line.
type Crucible struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (c Crucible) String() string {
	return fmt.Sprintf("%d..%d", c.Min, c.Max)
}

// Params holds the tunable inputs of every puzzle
type Params struct {
	Crucible        Crucible `json:"crucible"`
	UltraCrucible   Crucible `json:"ultra_crucible"`
	GardenSteps     int      `json:"garden_steps"`
	ExpansionFactor int      `json:"expansion_factor"`
	UnfoldCopies    int      `json:"unfold_copies"`
	ButtonPresses   int      `json:"button_presses"`
	SpinCycles      int      `json:"spin_cycles"`
}

// DefaultParams returns the parameters the puzzles are defined with
func DefaultParams() *Params {
	return &Params{
		Crucible:        Crucible{Min: 1, Max: 3},
		UltraCrucible:   Crucible{Min: 4, Max: 10},
		GardenSteps:     64,
		ExpansionFactor: 1000000,
		UnfoldCopies:    5,
		ButtonPresses:   1000,
		SpinCycles:      1000000000,
	}
}

// ValidateParams checks that every parameter is in range
func ValidateParams(p *Params) error {
	if p == nil {
		return fmt.Errorf("%w: params are required", ErrInvalidParams)
	}

	for name, c := range map[string]Crucible{"crucible": p.Crucible, "ultra_crucible": p.UltraCrucible} {
		if c.Min < MinStraightRun || c.Max > MaxStraightRun {
			return fmt.Errorf("%w: params validation: %s must be within %d..%d, got %v",
				ErrInvalidParams, name, MinStraightRun, MaxStraightRun, c)
		}
		if c.Min > c.Max {
			return fmt.Errorf("%w: params validation: %s min (%d) cannot exceed max (%d)",
				ErrInvalidParams, name, c.Min, c.Max)
		}
	}

	if p.GardenSteps < 0 || p.GardenSteps > MaxGardenSteps {
		return fmt.Errorf("%w: params validation: garden_steps must be between 0 and %d, got %d",
			ErrInvalidParams, MaxGardenSteps, p.GardenSteps)
	}
	if p.ExpansionFactor < MinExpansion || p.ExpansionFactor > MaxExpansion {
		return fmt.Errorf("%w: params validation: expansion_factor must be between %d and %d, got %d",
			ErrInvalidParams, MinExpansion, MaxExpansion, p.ExpansionFactor)
	}
	if p.UnfoldCopies < 1 || p.UnfoldCopies > MaxUnfoldCopies {
		return fmt.Errorf("%w: params validation: unfold_copies must be between 1 and %d, got %d",
			ErrInvalidParams, MaxUnfoldCopies, p.UnfoldCopies)
	}
	if p.ButtonPresses < 0 || p.ButtonPresses > MaxPresses {
		return fmt.Errorf("%w: params validation: button_presses must be between 0 and %d, got %d",
			ErrInvalidParams, MaxPresses, p.ButtonPresses)
	}
	if p.SpinCycles < 0 {
		return fmt.Errorf("%w: params validation: spin_cycles cannot be negative, got %d",
			ErrInvalidParams, p.SpinCycles)
	}

	return nil
}

// LoadParams reads a JSON parameter file on top of the defaults. Relative
// paths are resolved against the CONFIG_DIR environment variable when it is set.
func LoadParams(filename string) (*Params, error) {
	path := filename
	if dir := os.Getenv("CONFIG_DIR"); dir != "" && !filepath.IsAbs(filename) {
		path = filepath.Join(dir, filename)
	}
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrParamsNotFound, path)
		}
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	params := DefaultParams()
	if err := json.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidParams, path, err)
	}

	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	return params, nil
}
