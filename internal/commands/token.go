package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hy4ri/todos-tui/internal/config"
)

// addToken adds the token commands. Tokens are stored per server and
// owner, so --base-url and --owner pick the list they apply to.
func addToken(root *cobra.Command, opts *globalOptions) {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the bearer token sent to the server.",
		Example: `
todos-tui token set s3cret
todos-tui token set s3cret --owner 42 --base-url http://localhost:3000
todos-tui token clear
`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store a token for the configured server and owner.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := config.SaveToken(cfg.Server, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token saved for %s.\n", cfg.Server.TokenScope())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the token of the configured server and owner.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := config.ClearToken(cfg.Server); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token removed for %s.\n", cfg.Server.TokenScope())
			return nil
		},
	})

	root.AddCommand(cmd)
}
