// Package commands wires the todos-tui command line.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/config"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	baseURL    string
	ownerID    int
	logLevel   string
}

// New returns the root command.
func New() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "todos-tui",
		Short: "Manage your todo list from the terminal.",
		Long: `todos-tui is a terminal client for a todo list kept on a REST server.

Changes show up immediately and are synced in the background. Run
'todos-tui init' to create a config file, then 'todos-tui' to start.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/todos-tui/config.yaml)")
	flags.StringVar(&opts.baseURL, "base-url", "", "Override server.base_url")
	flags.IntVar(&opts.ownerID, "owner", 0, "Override server.owner_id")
	flags.StringVar(&opts.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	addUI(cmd, opts)
	addInit(cmd, opts)
	addList(cmd, opts)
	addToken(cmd, opts)
	addVersion(cmd)
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if o.baseURL != "" {
		cfg.Server.BaseURL = strings.TrimSpace(o.baseURL)
	}
	if o.ownerID != 0 {
		cfg.Server.OwnerID = o.ownerID
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds the API client for cfg using the stored token, if any.
func newClient(cfg *config.Config) (*api.Client, error) {
	token, err := config.GetToken(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	opts := []api.Option{api.WithTimeout(cfg.Server.Timeout)}
	if token != "" {
		opts = append(opts, api.WithAccessToken(token))
	}
	return api.NewClient(cfg.Server.BaseURL, cfg.Server.OwnerID, opts...), nil
}
