package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"firechat/internal/api"
	"firechat/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools available to the agent",
	Long: `Fetch and display the agent's tool directory.

When the backend cannot be reached the built-in fallback list is shown
instead, with a note about the failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTools()
	},
}

func runTools() error {
	cfg := loadConfig()
	client := api.NewClient(cfg.BaseURL(), api.WithToolsTimeout(cfg.ToolsTimeout()))

	directory := tools.NewDirectory()

	spin := newSpinner("Fetching tool directory")
	spin.start()
	names, err := client.FetchTools(context.Background())
	if err != nil {
		spin.stopWithError()
		directory.ApplyFallback(err)
	} else {
		spin.stopWithSuccess(fmt.Sprintf("%d tools (%s)", len(names), cfg.StatusLabel()))
		directory.Replace(names)
	}

	for _, line := range ToolLines(directory) {
		fmt.Println(line)
	}
	return nil
}

// ToolLines formats a directory for plain terminal output.
func ToolLines(directory *tools.Directory) []string {
	itemStyle := lipgloss.NewStyle().Foreground(colorText)
	warnStyle := lipgloss.NewStyle().Foreground(colorWarning)

	var lines []string
	for _, name := range directory.Names() {
		lines = append(lines, itemStyle.Render("  "+tools.Icon(name)+" "+name))
	}
	if directory.UsingFallback() {
		lines = append(lines, warnStyle.Render(
			fmt.Sprintf("⚠ Backend unreachable (%v) - showing the built-in fallback list", directory.Err())))
	}
	return lines
}
