package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/config"
	"github.com/hy4ri/todos-tui/internal/tui/state"
)

func init() {
	color.NoColor = true
}

func TestPrintTodos(t *testing.T) {
	todos := []api.Todo{
		{ID: 1, Title: "buy milk"},
		{ID: 2, Title: "walk dog", Completed: true},
		{ID: 3, Title: "write report"},
	}

	tests := []struct {
		name     string
		filter   state.Filter
		contains []string
		excludes []string
	}{
		{name: "all", filter: state.FilterAll, contains: []string{"buy milk", "walk dog", "write report", "2 items left"}},
		{name: "active", filter: state.FilterActive, contains: []string{"buy milk", "write report"}, excludes: []string{"walk dog"}},
		{name: "completed", filter: state.FilterCompleted, contains: []string{"[x]", "walk dog"}, excludes: []string{"buy milk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printTodos(&buf, todos, tt.filter)
			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestPrintTodosEmpty(t *testing.T) {
	var buf bytes.Buffer
	printTodos(&buf, []api.Todo{{ID: 1, Title: "open"}}, state.FilterCompleted)
	assert.Equal(t, "No completed todos.\n", buf.String())

	buf.Reset()
	printTodos(&buf, nil, state.FilterAll)
	assert.Equal(t, "No todos.\n", buf.String())
}

func TestInitWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos-tui", "config.yaml")

	var out bytes.Buffer
	root := New()
	root.SetOut(&out)
	root.SetArgs([]string{"init", "--config", path})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "owner_id:")
	assert.Contains(t, out.String(), "Config file created")
}

func TestInitAsksBeforeOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep: me\n"), 0600))

	var out bytes.Buffer
	root := New()
	root.SetOut(&out)
	root.SetIn(strings.NewReader("n\n"))
	root.SetArgs([]string{"init", "--config", path})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep: me\n", string(data))
	assert.Contains(t, out.String(), "Aborted.")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TODOS_BASE_URL", "")
	t.Setenv("TODOS_OWNER_ID", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configTemplate), 0600))

	opts := &globalOptions{configPath: path, baseURL: " http://localhost:3000 ", ownerID: 42, logLevel: "debug"}
	cfg, err := opts.loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.Server.BaseURL)
	assert.Equal(t, 42, cfg.Server.OwnerID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	root := New()
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--short"})
	require.NoError(t, root.Execute())
	assert.Equal(t, version+"\n", out.String())
}

func TestTokenSetUsesServerAndOwner(t *testing.T) {
	keyring.MockInit()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("TODOS_TOKEN", "")
	t.Setenv("TODOS_BASE_URL", "")
	t.Setenv("TODOS_OWNER_ID", "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	root := New()
	root.SetOut(&out)
	root.SetArgs([]string{"token", "set", "s3cret", "--config", path, "--owner", "42", "--base-url", "http://localhost:3000"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "http://localhost:3000#42")

	token, err := config.GetToken(config.ServerConfig{BaseURL: "http://localhost:3000", OwnerID: 42})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", token)

	token, err = config.GetToken(config.ServerConfig{BaseURL: "http://localhost:3000", OwnerID: 1})
	require.NoError(t, err)
	assert.Empty(t, token)
}
