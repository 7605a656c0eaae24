package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

func addList(root *cobra.Command, opts *globalOptions) {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the todo list.",
		Example: `
todos-tui list
todos-tui list --filter active
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := state.ParseFilter(filter)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Server.Timeout)
			defer cancel()
			todos, err := client.ListTodos(ctx)
			if err != nil {
				return err
			}

			printTodos(color.Output, todos, f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "One of all, active or completed")
	root.AddCommand(cmd)
}

// printTodos writes the todos visible under f as a table followed by the
// number of active items.
func printTodos(w io.Writer, todos []api.Todo, f state.Filter) {
	visible := state.FilterTodos(todos, f)
	if len(visible) == 0 {
		_, _ = fmt.Fprintln(w, emptyMessage(f))
		return
	}

	bold := color.New(color.Bold)
	done := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint(" "), bold.Sprint("Title"))
	for _, t := range visible {
		if t.Completed {
			tbl.AddRow(t.ID, done.Sprint("[x]"), faint.Sprint(t.Title))
		} else {
			tbl.AddRow(t.ID, "[ ]", t.Title)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)

	active := state.ActiveCount(todos)
	noun := "items"
	if active == 1 {
		noun = "item"
	}
	_, _ = fmt.Fprintf(w, "\n%d %s left\n", active, noun)
}

func emptyMessage(f state.Filter) string {
	if f == state.FilterAll {
		return "No todos."
	}
	return fmt.Sprintf("No %s todos.", strings.ToLower(f.String()))
}
