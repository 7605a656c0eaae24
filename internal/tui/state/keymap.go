package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all list-mode key bindings.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Item actions
	Edit   Key
	Toggle Key
	Delete Key
	Copy   Key

	// List actions
	NewTodo        Key
	ToggleAll      Key
	ClearCompleted Key

	// Filters
	NextFilter      Key
	PrevFilter      Key
	FilterAll       Key
	FilterActive    Key
	FilterCompleted Key

	// General
	Refresh Key
	Dismiss Key
	Help    Key
	Quit    Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Edit:   Key{Key: "e", Help: "edit title"},
		Toggle: Key{Key: "x", Help: "toggle completed"},
		Delete: Key{Key: "d", Help: "delete (dd)"},
		Copy:   Key{Key: "y", Help: "copy title (yy)"},

		NewTodo:        Key{Key: "a", Help: "new todo"},
		ToggleAll:      Key{Key: "t", Help: "toggle all"},
		ClearCompleted: Key{Key: "C", Help: "clear completed"},

		NextFilter:      Key{Key: "l", Help: "next filter"},
		PrevFilter:      Key{Key: "h", Help: "previous filter"},
		FilterAll:       Key{Key: "1", Help: "all"},
		FilterActive:    Key{Key: "2", Help: "active"},
		FilterCompleted: Key{Key: "3", Help: "completed"},

		Refresh: Key{Key: "r", Help: "reload"},
		Dismiss: Key{Key: "esc", Help: "dismiss error"},
		Help:    Key{Key: "?", Help: "help"},
		Quit:    Key{Key: "q", Help: "quit"},
	}
}

// KeyState tracks multi-key sequences (gg, dd, yy).
type KeyState struct {
	LastKey  string
	WaitingG bool
	WaitingD bool
	WaitingY bool
}

// HandleKey processes a key press in list mode and returns the action to take.
// Returns the action name and whether the key was consumed. With vim
// sequences disabled, d and y act on the first press.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData, vim bool) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.Delete.Key {
			return "delete", true
		}
	}

	if ks.WaitingY {
		ks.WaitingY = false
		if key == keymap.Copy.Key {
			return "copy", true
		}
	}

	if vim {
		switch key {
		case keymap.Top.Key:
			ks.WaitingG = true
			ks.LastKey = key
			return "", true
		case keymap.Delete.Key:
			ks.WaitingD = true
			ks.LastKey = key
			return "", true
		case keymap.Copy.Key:
			ks.WaitingY = true
			ks.LastKey = key
			return "", true
		}
	} else {
		switch key {
		case keymap.Top.Key:
			return "top", true
		case keymap.Delete.Key:
			return "delete", true
		case keymap.Copy.Key:
			return "copy", true
		}
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key, "end":
		return "bottom", true
	case "home":
		return "top", true
	case keymap.Edit.Key, "enter":
		return "edit", true
	case keymap.Toggle.Key, " ":
		return "toggle", true
	case "delete":
		return "delete", true
	case keymap.NewTodo.Key, "i", "tab":
		return "new_todo", true
	case keymap.ToggleAll.Key:
		return "toggle_all", true
	case keymap.ClearCompleted.Key:
		return "clear_completed", true
	case keymap.NextFilter.Key, "right":
		return "next_filter", true
	case keymap.PrevFilter.Key, "left":
		return "prev_filter", true
	case keymap.FilterAll.Key:
		return "filter_all", true
	case keymap.FilterActive.Key:
		return "filter_active", true
	case keymap.FilterCompleted.Key:
		return "filter_completed", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.Dismiss.Key:
		return "dismiss", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Quit.Key:
		return "quit", true
	case "f1":
		return "toggle_hints", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{k.PrevFilter.Key + "/" + k.NextFilter.Key, "Previous/next filter"},
		{"1/2/3", "All / Active / Completed"},
		{"", ""},
		{"Todo Actions", ""},
		{k.NewTodo.Key + "/tab", "Focus new todo input"},
		{k.Edit.Key + "/enter", "Edit title (empty deletes, then focuses input)"},
		{k.Toggle.Key + "/space", "Toggle completed"},
		{"dd", "Delete todo (focus stays on the list)"},
		{"yy", "Copy title to clipboard"},
		{k.ToggleAll.Key, "Complete / uncomplete all"},
		{k.ClearCompleted.Key, "Clear completed"},
		{"", ""},
		{"Editing", ""},
		{"enter", "Save title"},
		{"esc", "Cancel edit"},
		{"ctrl+x", "Toggle completed"},
		{"", ""},
		{"General", ""},
		{k.Refresh.Key, "Reload from server"},
		{k.Dismiss.Key, "Dismiss error"},
		{k.Help.Key, "Toggle help"},
		{"f1", "Toggle key hints"},
		{k.Quit.Key, "Quit"},
	}
}
