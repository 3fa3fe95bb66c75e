package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/blurhash-mcp/internal/server"
	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "blurhash-mcp",
	Short: "MCP server for blurhash image placeholders",
	Long: `blurhash-mcp - MCP server for blurhash image placeholders

Without a subcommand the server communicates via MCP protocol over
stdin/stdout. Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  ` + server.EnvLogLevel + `=debug       Enable debug logging
  ` + server.EnvWorkers + `=N             Goroutines per image encode (default: 1)
  ` + server.EnvMaxDimension + `=N       Downscale images before encoding (default: 0, off)`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blurhash-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.LoadConfig()
	if cfg.Debug {
		log.Printf("Blurhash MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Workers: %d, max dimension: %d", cfg.Workers, cfg.MaxDimension)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
