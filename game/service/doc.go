// Package service provides the solving layer between the transports and the
// puzzle packages.
//
// The service package implements:
//   - A registry of named puzzles and the parts each one answers
//   - Solving a puzzle from raw text or from an input file
//   - Mapping run parameters (config.Params) onto each puzzle
//   - Structured logging of every solve with timing information
//
// Core Interfaces:
//
// PuzzleService is the main service interface used by the CLI and the MCP
// server. PuzzleRegistry looks puzzles up by name and lists them.
//
// Usage:
//
//	registry := service.DefaultRegistry()
//	puzzles, err := service.NewPuzzleService(registry, config.DefaultParams(), logrus.New())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	solution, err := puzzles.SolveFile(ctx, "heatloss", "input.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, answer := range solution.Answers {
//		fmt.Println(answer.Value)
//	}
//
// Every solve is independent: puzzles are parsed from scratch and every search
// owns its frontier and visited set, so one service can be shared by
// concurrent callers.
package service
