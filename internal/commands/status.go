package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"firechat/internal/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend health",
	Long:  `Query the backend health endpoint and report agent readiness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus()
	},
}

func runStatus() error {
	cfg := loadConfig()
	client := api.NewClient(cfg.BaseURL(), api.WithToolsTimeout(cfg.ToolsTimeout()))

	keyStyle := lipgloss.NewStyle().Foreground(colorTextDim)
	okStyle := lipgloss.NewStyle().Foreground(colorSuccess)
	badStyle := lipgloss.NewStyle().Foreground(colorFailure)

	fmt.Printf("%s %s (%s)\n", keyStyle.Render("Backend:"), cfg.BaseURL(), cfg.StatusLabel())

	health, err := client.Health(context.Background())
	if err != nil {
		fmt.Printf("%s %s\n", keyStyle.Render("Health: "), badStyle.Render(fmt.Sprintf("unreachable (%v)", err)))
		return nil
	}

	state := okStyle.Render(health.Status)
	if !health.Ready() {
		state = badStyle.Render(health.Status)
	}
	fmt.Printf("%s %s\n", keyStyle.Render("Health: "), state)
	fmt.Printf("%s %d\n", keyStyle.Render("Tools:  "), health.ToolsAvailable)
	return nil
}
