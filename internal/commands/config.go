package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/chatptatlas/internal/config"
	"github.com/diogo/chatptatlas/internal/render"
	"github.com/diogo/chatptatlas/internal/tui"
)

// newConfigCmd creates the config command and its subcommands
func newConfigCmd(deps *Dependencies) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprintln(deps.Stdout, string(data))
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit chatptatlas configuration",
		Long: `Inspect the chatptatlas configuration.

Settings live in config.json inside the config directory (~/.chatptatlas, or
$CHATPTATLAS_CONFIG_DIR). CHATPTATLAS_* environment variables override them.`,
		Args: cobra.NoArgs,
		RunE: showCmd.RunE,
	}

	cmd.AddCommand(showCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value (e.g. markdown.style)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			value, err := config.Lookup(cfg, args[0])
			if err != nil {
				keys, _ := config.Keys(cfg)
				return fmt.Errorf("%w (available: %s)", err, strings.Join(keys, ", "))
			}
			fmt.Fprintln(deps.Stdout, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Open the interactive settings menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			if err := render.UsePalette(cfg.TUITheme); err == nil {
				tui.UpdateTheme()
			}
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			return deps.TUI.RunConfig(cfg, path)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Stdout, path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "List the chat view color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			for _, p := range render.Palettes() {
				marker := " "
				if p.Name == cfg.TUITheme {
					marker = "*"
				}
				fmt.Fprintf(deps.Stdout, "%s %-12s %s\n", marker, p.Name, p.Description)
			}
			return nil
		},
	})

	return cmd
}
