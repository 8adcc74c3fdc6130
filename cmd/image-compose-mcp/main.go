package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hashicorp/logutils"
	"github.com/ironsheep/image-compose-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-compose-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-compose-mcp - MCP server for image compositing")
			fmt.Println()
			fmt.Println("Usage: image-compose-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_COMPOSE_LOG_LEVEL=DEBUG    Set minimum log level (DEBUG, INFO, WARN, ERROR)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logging goes to stderr (stdout is for MCP protocol)
	minLevel := os.Getenv("IMAGE_COMPOSE_LOG_LEVEL")
	if minLevel == "" {
		minLevel = "INFO"
	}
	log.SetOutput(&logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel(minLevel),
		Writer:   os.Stderr,
	})
	log.SetFlags(log.Ldate | log.Ltime)

	log.Printf("[DEBUG] image-compose-mcp v%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("[ERROR] server error: %v", err)
	}
}
