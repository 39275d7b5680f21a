package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/gridsearch/game/service"
)

// Server exposes a PuzzleService as MCP tools
type Server struct {
	puzzles   service.PuzzleService
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server backed by puzzles
func NewServer(puzzles service.PuzzleService) *Server {
	s := &Server{puzzles: puzzles}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Grid Search",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Grid Search - MCP Interface

Solves grid and graph puzzles with a shared best-cost / reachability engine.

AVAILABLE TOOLS:
- list_puzzles: List the registered puzzles and the parts each one answers
- solve: Solve a puzzle. Pass the puzzle text in 'input' or a file path in 'path'

Answers are returned one per part, in the order list_puzzles reports them.`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_puzzles",
		Description: "List registered puzzles with their descriptions and parts",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListPuzzles)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "solve",
		Description: "Solve a puzzle from inline text or an input file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"puzzle": map[string]interface{}{
					"type":        "string",
					"description": "Puzzle name as reported by list_puzzles",
				},
				"input": map[string]interface{}{
					"type":        "string",
					"description": "Puzzle text, one row per line",
				},
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path of an input file (used when input is empty)",
				},
			},
			Required: []string{"puzzle"},
		},
	}, s.handleSolve)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// RunStdio serves the tools over stdin/stdout until the client disconnects
func (s *Server) RunStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tool handlers

func (s *Server) handleListPuzzles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	puzzles, err := s.puzzles.ListPuzzles(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Puzzles (%d):\n\n", len(puzzles))
	for _, p := range puzzles {
		result += fmt.Sprintf("- %s: %s (parts: %s)\n", p.Name, p.Description, strings.Join(p.Parts, ", "))
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	name, _ := args["puzzle"].(string)
	input, _ := args["input"].(string)
	path, _ := args["path"].(string)

	if name == "" {
		return mcp.NewToolResultError("puzzle is required"), nil
	}

	var solution *service.Solution
	var err error
	switch {
	case strings.TrimSpace(input) != "":
		solution, err = s.puzzles.Solve(ctx, name, input)
	case path != "":
		solution, err = s.puzzles.SolveFile(ctx, name, path)
	default:
		return mcp.NewToolResultError("either input or path is required"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSolution(solution)), nil
}

func formatSolution(solution *service.Solution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Puzzle: %s (%d rows)\n", solution.Puzzle, solution.Rows)
	for _, answer := range solution.Answers {
		fmt.Fprintf(&b, "%s: %d\n", answer.Part, answer.Value)
	}
	fmt.Fprintf(&b, "Solved in %v\n", solution.Duration.Round(time.Microsecond))
	return b.String()
}
