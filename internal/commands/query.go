package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"firechat/internal/api"
	"firechat/internal/chat"
	"firechat/internal/models"
	"firechat/internal/render"
	"firechat/internal/tools"
)

// Styles matching the chat TUI
var (
	agentLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	agentBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)

	toolsUsedStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)
)

// runQuery sends a single message and prints the rendered reply.
func runQuery(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("empty prompt")
	}

	cfg := loadConfig()
	client := api.NewClient(cfg.BaseURL(),
		api.WithToolsTimeout(cfg.ToolsTimeout()),
		api.WithChatTimeout(cfg.ChatTimeout()),
	)

	controller := chat.NewController(client)

	spin := newSpinner("Waiting for the agent")
	spin.start()
	controller.Send(context.Background(), prompt)
	spin.halt()

	// The exchange always appends exactly one bot message: the reply on
	// success, a remediation message on failure.
	message := lastBotMessage(controller.Messages())
	printReply(message)

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(message.Content), 0o644); err != nil {
			return fmt.Errorf("failed to save reply: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved reply to %s\n", outputFlag)
	}

	return nil
}

// lastBotMessage returns the most recent bot entry in the log.
func lastBotMessage(messages []models.Message) models.Message {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleBot {
			return messages[i]
		}
	}
	return models.Message{Role: models.RoleBot}
}

// printReply renders a bot message and its tools-used line to stdout.
func printReply(message models.Message) {
	width := terminalWidth() - 6
	if width > 100 {
		width = 100
	}

	fmt.Println(agentLabelStyle.Render("🔥 Agent"))
	fmt.Println(agentBubbleStyle.Width(width + 2).Render(render.Message(message.Content, width)))

	if len(message.ToolsUsed) > 0 {
		parts := make([]string, len(message.ToolsUsed))
		for i, name := range message.ToolsUsed {
			parts[i] = tools.Icon(name) + " " + name
		}
		fmt.Println(toolsUsedStyle.Render("⚙ Tools used: " + strings.Join(parts, ", ")))
	}
}

// terminalWidth returns the current terminal width, defaulting to 80.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
