// Package mcp provides a Model Context Protocol server for the puzzle solvers.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for listing and solving puzzles
//   - Stdio transport for local MCP clients
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - list_puzzles: List registered puzzles and the parts they answer
//   - solve: Solve a puzzle from inline text or from an input file path
//
// Usage:
//
//	puzzles, _ := service.NewPuzzleService(service.DefaultRegistry(), params, logger)
//	server := mcp.NewServer(puzzles)
//	if err := server.RunStdio(); err != nil {
//		log.Fatal(err)
//	}
//
// Each tool call runs its own search; nothing is shared between calls beyond
// the read-only puzzle registry.
package mcp
