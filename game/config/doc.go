// Package config provides the run parameters shared by the puzzle solvers.
//
// The config package handles:
//   - Default parameters for every puzzle (step budgets, straight-run limits,
//     expansion factors, repetition counts)
//   - Parameter validation with descriptive errors
//   - Optional JSON parameter files that override the defaults
//
// Parameter Format:
//
// A parameter file is a JSON object whose keys match the Params struct tags.
// Missing keys keep their default value:
//
//	{
//	  "crucible": {"min": 1, "max": 3},
//	  "ultra_crucible": {"min": 4, "max": 10},
//	  "garden_steps": 64
//	}
//
// Usage:
//
//	params, err := config.LoadParams("params.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Or start from the defaults and adjust
//	params := config.DefaultParams()
//	params.GardenSteps = 6
//	if err := config.ValidateParams(params); err != nil {
//		log.Fatal(err)
//	}
package config
