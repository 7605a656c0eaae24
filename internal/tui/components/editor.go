package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/tui/styles"
)

// EditMode is the editor's state.
type EditMode int

const (
	EditViewing EditMode = iota
	EditEditing
)

// EditAction tells the caller what a submit requires.
type EditAction int

const (
	// EditNone means there was nothing to submit.
	EditNone EditAction = iota
	// EditDiscard means the title did not change; the editor is back to viewing.
	EditDiscard
	// EditRename means the caller must persist Title and report back via Resolve.
	EditRename
	// EditRemove means the draft was empty and the item should be deleted.
	EditRemove
)

// EditIntent is the outcome of Submit.
type EditIntent struct {
	Action EditAction
	ItemID int
	Title  string
}

// ItemEditor is the inline title editor for a single todo.
type ItemEditor struct {
	ItemID int

	mode     EditMode
	original string
	input    textinput.Model
	saving   bool
	err      error
	width    int
}

// NewItemEditor creates an editor in viewing mode.
func NewItemEditor() *ItemEditor {
	ti := textinput.New()
	ti.Placeholder = "Empty todo will be deleted"
	ti.Prompt = ""
	ti.CharLimit = 256
	return &ItemEditor{input: ti}
}

// Begin switches to editing for todo, seeding the draft with its title.
func (e *ItemEditor) Begin(todo api.Todo) tea.Cmd {
	e.ItemID = todo.ID
	e.mode = EditEditing
	e.original = todo.Title
	e.saving = false
	e.err = nil
	e.input.SetValue(todo.Title)
	e.input.CursorEnd()
	return e.input.Focus()
}

// Cancel reverts the draft and returns to viewing without persisting.
// Used for Escape and for any interaction outside the edited row.
func (e *ItemEditor) Cancel() {
	e.mode = EditViewing
	e.saving = false
	e.err = nil
	e.input.SetValue(e.original)
	e.input.Blur()
}

// Submit validates the trimmed draft.
func (e *ItemEditor) Submit() EditIntent {
	if e.mode != EditEditing || e.saving {
		return EditIntent{Action: EditNone, ItemID: e.ItemID}
	}

	title := strings.TrimSpace(e.input.Value())
	switch {
	case title == strings.TrimSpace(e.original):
		e.Cancel()
		return EditIntent{Action: EditDiscard, ItemID: e.ItemID}
	case title == "":
		e.Cancel()
		return EditIntent{Action: EditRemove, ItemID: e.ItemID}
	}

	e.saving = true
	e.err = nil
	e.input.SetValue(title)
	return EditIntent{Action: EditRename, ItemID: e.ItemID, Title: title}
}

// Resolve finishes a rename. On failure the editor stays open with the
// draft intact and the error shown inline.
func (e *ItemEditor) Resolve(err error) {
	if !e.saving {
		return
	}
	e.saving = false
	if err != nil {
		e.err = err
		return
	}
	e.original = e.input.Value()
	e.mode = EditViewing
	e.input.Blur()
}

// Editing reports whether the editor is open.
func (e *ItemEditor) Editing() bool {
	return e.mode == EditEditing
}

// EditingItem reports whether the editor is open on id.
func (e *ItemEditor) EditingItem(id int) bool {
	return e.Editing() && e.ItemID == id
}

// Saving reports whether a rename is waiting for the server.
func (e *ItemEditor) Saving() bool {
	return e.saving
}

// Err returns the last rename failure.
func (e *ItemEditor) Err() error {
	return e.err
}

// Mode returns the current state.
func (e *ItemEditor) Mode() EditMode {
	return e.mode
}

// Draft returns the current text in the edit field.
func (e *ItemEditor) Draft() string {
	return e.input.Value()
}

// SetDraft replaces the edit field's text.
func (e *ItemEditor) SetDraft(s string) {
	e.input.SetValue(s)
}

// Init implements Component.
func (e *ItemEditor) Init() tea.Cmd {
	return nil
}

// Update implements Component. Keystrokes reach the field only while
// editing and not saving.
func (e *ItemEditor) Update(msg tea.Msg) (Component, tea.Cmd) {
	if e.mode != EditEditing || e.saving {
		return e, nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// View implements Component. The editor always renders on one line.
func (e *ItemEditor) View() string {
	if e.mode != EditEditing {
		return ""
	}
	field := styles.InputFocused.Render(e.input.View())
	if e.saving {
		field += styles.StatusBarText.Render(" saving…")
	}
	if e.err != nil {
		field += " " + styles.StatusBarError.Render("not saved")
	}
	return field
}

// SetSize implements Component.
func (e *ItemEditor) SetSize(width, height int) {
	e.width = width
	// Room for the cursor, the checkbox and the "not saved" marker.
	if width > 24 {
		e.input.Width = width - 20
	}
}
