// Package mcp exposes the structuring and comparison engine as MCP tools
// over stdio, so an editor or agent client can ask for a function's
// structured tree or a clone comparison without shelling out to the CLI.
// Grounded on github.com/ludo-technologies/pyscn's mcp package
// (tools.go/handlers.go/dependencies.go), SPEC_FULL.md 3's mark3labs/mcp-go
// wiring.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers every bincc MCP tool with s, dispatching to
// handlers closed over deps.
func RegisterTools(s *server.MCPServer, deps *Dependencies) {
	s.AddTool(mcp.NewTool("structure_function",
		mcp.WithDescription("Disassemble a binary and reduce one function's control flow graph to a structured tree"),
		mcp.WithString("binary",
			mcp.Required(),
			mcp.Description("Path to the binary to disassemble")),
		mcp.WithNumber("offset",
			mcp.Required(),
			mcp.Description("Entry address of the function to structure")),
		mcp.WithString("format",
			mcp.Description("Output format: dot, json, yaml (default: json)")),
	), deps.HandleStructureFunction)

	s.AddTool(mcp.NewTool("structure_binary",
		mcp.WithDescription("Disassemble a binary and reduce every function it contains to structured trees"),
		mcp.WithString("binary",
			mcp.Required(),
			mcp.Description("Path to the binary to disassemble")),
		mcp.WithString("format",
			mcp.Description("Output format: dot, json, yaml (default: json)")),
	), deps.HandleStructureBinary)

	s.AddTool(mcp.NewTool("compare_functions",
		mcp.WithDescription("Compare a function from each of two binaries for a structural clone"),
		mcp.WithString("binary_a",
			mcp.Required(),
			mcp.Description("Path to the first binary")),
		mcp.WithNumber("offset_a",
			mcp.Required(),
			mcp.Description("Entry address of the function in binary_a")),
		mcp.WithString("binary_b",
			mcp.Required(),
			mcp.Description("Path to the second binary")),
		mcp.WithNumber("offset_b",
			mcp.Required(),
			mcp.Description("Entry address of the function in binary_b")),
	), deps.HandleCompareFunctions)
}
