package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hy4ri/todos-tui/internal/config"
)

const configTemplate = `# todos-tui configuration
# Location: ~/.config/todos-tui/config.yaml

server:
  # Todos collection endpoint and the owner whose list is shown.
  base_url: https://mate.academy/students-api
  owner_id: 1380
  timeout: 30s

ui:
  # Require gg / dd / yy sequences (default: true)
  vim_mode: true
  # Filter shown at start: all, active or completed
  default_filter: all
  # How long error messages stay on screen
  error_timeout: 3s
  # Also send a desktop notification when a request fails
  notify_errors: false

log:
  level: info
  # file: /path/to/debug.log
`

func addInit(root *cobra.Command, opts *globalOptions) {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a template config file.",
		Example: `
todos-tui init
todos-tui init --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.ConfigPath()
				if err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
				path = p
			}
			return writeConfigTemplate(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file without asking")
	root.AddCommand(cmd)
}

func writeConfigTemplate(cmd *cobra.Command, path string, force bool) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Set server.owner_id to your user id")
	fmt.Fprintln(out, "  2. If the server needs a token, run 'todos-tui token set <token>'")
	fmt.Fprintln(out, "  3. Run 'todos-tui' to start")
	return nil
}
