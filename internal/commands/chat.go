package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firechat/internal/api"
	"firechat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the agent.

The session keeps conversation context across messages and shows which
tools the agent invoked for each reply. Type 'exit', 'quit', or press
Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg := loadConfig()
	client := api.NewClient(cfg.BaseURL(),
		api.WithToolsTimeout(cfg.ToolsTimeout()),
		api.WithChatTimeout(cfg.ChatTimeout()),
	)

	// Connectivity check before entering the TUI. A failed check is not
	// fatal: the backend may still be spinning up, and every later
	// failure surfaces in-thread anyway.
	spin := newSpinner("Connecting to agent")
	spin.start()
	health, err := client.Health(context.Background())
	switch {
	case err != nil:
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, "Backend not reachable yet - failures will show in the chat thread")
	case !health.Ready():
		spin.stopWithSuccess("Connected (agent still initializing)")
	default:
		spin.stopWithSuccess(fmt.Sprintf("Connected (%d tools available)", health.ToolsAvailable))
	}

	return tui.RunChat(client, cfg)
}
