// Command bincc-mcp exposes the structuring and comparison engine as an
// MCP server over stdio. Grounded on cmd/pyscn-mcp/main.go.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davidepi/bincc/internal/config"
	"github.com/davidepi/bincc/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "bincc"
	serverVersion = "1.0.0"
)

func main() {
	// MCP uses stdout for JSON-RPC; all logging goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	server := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	configPath := os.Getenv("BINCC_CONFIG")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("warning: failed to load config: %v, using defaults", err)
		cfg = config.DefaultConfig()
	}

	deps := mcp.NewDependencies(cfg)
	mcp.RegisterTools(server, deps)

	log.Printf("starting %s MCP server v%s", serverName, serverVersion)
	log.Println("registered tools:")
	log.Println("  - structure_function: reduce one function's CFG to a structured tree")
	log.Println("  - structure_binary: reduce every function of a binary")
	log.Println("  - compare_functions: detect a structural clone between two functions")
	log.Println("server ready - waiting for MCP client connection...")

	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
