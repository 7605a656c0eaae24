package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hy4ri/todos-tui/internal/api"
)

func TestItemEditorSubmit(t *testing.T) {
	tests := []struct {
		name   string
		draft  string
		action EditAction
		title  string
		mode   EditMode
	}{
		{name: "unchanged", draft: "buy milk", action: EditDiscard, mode: EditViewing},
		{name: "unchanged after trim", draft: "  buy milk\t", action: EditDiscard, mode: EditViewing},
		{name: "empty", draft: "   ", action: EditRemove, mode: EditViewing},
		{name: "renamed", draft: " buy bread ", action: EditRename, title: "buy bread", mode: EditEditing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewItemEditor()
			e.Begin(api.Todo{ID: 3, Title: "buy milk"})
			e.SetDraft(tt.draft)

			intent := e.Submit()

			assert.Equal(t, tt.action, intent.Action)
			assert.Equal(t, 3, intent.ItemID)
			assert.Equal(t, tt.title, intent.Title)
			assert.Equal(t, tt.mode, e.Mode())
		})
	}
}

func TestItemEditorResolve(t *testing.T) {
	e := NewItemEditor()
	e.Begin(api.Todo{ID: 1, Title: "old"})
	e.SetDraft("new")
	e.Submit()
	assert.True(t, e.Saving())

	// Input is frozen while saving.
	e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "new", e.Draft())

	e.Resolve(errors.New("offline"))
	assert.True(t, e.EditingItem(1))
	assert.False(t, e.Saving())
	assert.EqualError(t, e.Err(), "offline")
	assert.Equal(t, "new", e.Draft())
	assert.Contains(t, e.View(), "not saved")

	e.Submit()
	e.Resolve(nil)
	assert.False(t, e.Editing())
	assert.NoError(t, e.Err())
}

func TestItemEditorCancel(t *testing.T) {
	e := NewItemEditor()
	e.Begin(api.Todo{ID: 1, Title: "original"})
	e.SetDraft("draft")

	e.Cancel()

	assert.Equal(t, EditViewing, e.Mode())
	assert.Equal(t, "original", e.Draft())
	assert.Empty(t, e.View())
	assert.Equal(t, EditNone, e.Submit().Action)
}

func TestHelpClose(t *testing.T) {
	h := NewHelp()
	h.SetKeymap([][]string{{"General", ""}, {"q", "Quit"}})
	h.SetSize(80, 24)
	assert.Contains(t, h.View(), "Quit")

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, CloseRequestMsg{}, cmd())
	}
}
