package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"firechat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change the stored configuration.

Settings live in ~/.firechat/config.json. Without a subcommand the
current values are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it.

Keys:
  host              Backend host (localhost/127.0.0.1 select the local backend)
  tools-timeout     Tool directory fetch timeout in seconds
  chat-timeout      Chat request timeout in seconds
  copy-to-clipboard Copy each reply to the clipboard (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(args[0], args[1])
	},
}

func runConfigShow() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	path, _ := config.GetConfigPath()
	fmt.Printf("Config file:       %s\n", path)
	fmt.Printf("host:              %s (%s)\n", cfg.Host, cfg.StatusLabel())
	fmt.Printf("tools-timeout:     %ds\n", cfg.ToolsTimeoutSec)
	fmt.Printf("chat-timeout:      %ds\n", cfg.ChatTimeoutSec)
	fmt.Printf("copy-to-clipboard: %t\n", cfg.CopyToClipboard)
	return nil
}

func runConfigSet(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "host":
		cfg.Host = value
	case "tools-timeout":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("tools-timeout must be a positive number of seconds")
		}
		cfg.ToolsTimeoutSec = seconds
	case "chat-timeout":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("chat-timeout must be a positive number of seconds")
		}
		cfg.ChatTimeoutSec = seconds
	case "copy-to-clipboard":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy-to-clipboard must be true or false")
		}
		cfg.CopyToClipboard = enabled
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
