package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hy4ri/todos-tui/internal/logging"
	"github.com/hy4ri/todos-tui/internal/tui"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

func addUI(root *cobra.Command, opts *globalOptions) {
	var filter string

	root.Flags().StringVarP(&filter, "filter", "f", "", "Start with this filter: all, active or completed")
	root.Example = `
todos-tui
todos-tui --filter active
todos-tui --owner 42 --base-url http://localhost:3000
`
	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := opts.loadConfig()
		if err != nil {
			return err
		}

		var appOpts tui.Options
		if filter != "" {
			f, err := state.ParseFilter(filter)
			if err != nil {
				return err
			}
			appOpts.Filter = &f
		}

		logPath, err := cfg.LogPath()
		if err != nil {
			return err
		}
		logger, err := logging.Open(logging.Options{Path: logPath, Level: cfg.Log.Level, Prefix: "todos"})
		if err != nil {
			return err
		}
		defer logger.Close()

		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		logger.Info("starting", "base_url", cfg.Server.BaseURL, "owner", cfg.Server.OwnerID)

		app := tui.NewApp(client, cfg, logger.Logger, appOpts)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	}
}
