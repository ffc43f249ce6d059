// Package commands provides CLI commands for firechat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"firechat/internal/config"
)

var (
	// Global flags
	hostFlag   string
	outputFlag string
	fileFlag   string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "firechat [prompt]",
	Short: "Chat client for the Firecrawl web research agent",
	Long: `firechat is a terminal client for an LLM agent backend with web
search, scraping and extraction tools. The agent runs server-side; this
client sends your messages, shows the replies and lists the tools the
agent invoked along the way.

Examples:
  firechat chat                          Start interactive chat
  firechat tools                         List the agent's tools
  firechat status                        Check backend health
  firechat "Find open-source LLM tools"  Send a single query
  firechat -f prompt.md                  Read prompt from file
  cat prompt.md | firechat               Read prompt from stdin
  firechat "Hello" -o reply.md           Save the raw reply to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("firechat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0])
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "",
		"Backend host (localhost/127.0.0.1 select the local dev backend)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save raw reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig returns the startup configuration with the host flag applied.
func loadConfig() config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}
	if hostFlag != "" {
		cfg.Host = hostFlag
	}
	return cfg
}
