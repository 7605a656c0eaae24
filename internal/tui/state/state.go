package state

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/hy4ri/todos-tui/internal/api"
	"github.com/hy4ri/todos-tui/internal/config"
	"github.com/hy4ri/todos-tui/internal/logging"
	"github.com/hy4ri/todos-tui/internal/tui/components"
)

// View represents the current screen.
type View int

const (
	ViewList View = iota
	ViewHelp
)

// Store is the remote todo collection. *api.Client satisfies it.
type Store interface {
	ListTodos(ctx context.Context) ([]api.Todo, error)
	CreateTodo(ctx context.Context, req api.CreateTodoRequest) (*api.Todo, error)
	UpdateTodo(ctx context.Context, id int, req api.UpdateTodoRequest) (*api.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// Click records the last mouse press on the list, for double-click detection.
type Click struct {
	Row int
	At  time.Time
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store   Store
	Config  *config.Config
	Logger  *log.Logger
	OwnerID int

	CurrentView View

	// Data
	Todos       []api.Todo
	Placeholder *api.Todo
	Pending     map[ItemKey]bool
	Loaded      bool
	Loading     bool

	// Inflight counts outstanding requests per row; Pending is set while
	// it is non-zero.
	Inflight map[ItemKey]int

	// Per-field write versions. Issued holds the last version handed to a
	// request, Applied the newest version reflected in Todos.
	Issued  map[FieldKey]uint64
	Applied map[FieldKey]uint64

	// List state
	Filter       Filter
	Cursor       int
	ScrollOffset int

	// New todo input
	NewTodoInput textinput.Model
	InputFocused bool
	Creating     bool

	// Inline editor
	Editor *components.ItemEditor

	// UI state
	Banner    Banner
	StatusMsg string
	Width     int
	Height    int
	ShowHints bool
	LastClick Click

	// Components
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState
	HelpComp *components.HelpModel
}

// New creates the initial state for a session against store.
func New(store Store, cfg *config.Config, logger *log.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = ""
	input.CharLimit = 256

	filter, err := ParseFilter(cfg.UI.DefaultFilter)
	if err != nil {
		filter = FilterAll
	}

	help := components.NewHelp()
	keymap := DefaultKeymap()
	help.SetKeymap(keymap.HelpItems())

	return &State{
		Store:        store,
		Config:       cfg,
		Logger:       logger,
		OwnerID:      cfg.Server.OwnerID,
		CurrentView:  ViewList,
		Pending:      make(map[ItemKey]bool),
		Inflight:     make(map[ItemKey]int),
		Issued:       make(map[FieldKey]uint64),
		Applied:      make(map[FieldKey]uint64),
		Filter:       filter,
		NewTodoInput: input,
		Editor:       components.NewItemEditor(),
		ShowHints:    true,
		Spinner:      sp,
		Keymap:       keymap,
		KeyState:     &KeyState{},
		HelpComp:     help,
	}
}

// IsPending reports whether a mutating request for key is in flight.
func (s *State) IsPending(key ItemKey) bool {
	return s.Pending[key]
}

// BeginRequest marks key pending until the matching EndRequest.
// Requests for the same row may overlap.
func (s *State) BeginRequest(key ItemKey) {
	s.Inflight[key]++
	s.Pending[key] = true
}

// EndRequest finishes one request for key. The pending flag is cleared
// once no request for the row is left.
func (s *State) EndRequest(key ItemKey) {
	if s.Inflight[key] > 1 {
		s.Inflight[key]--
		return
	}
	delete(s.Inflight, key)
	delete(s.Pending, key)
}

// NextVersion returns the version for a new write to one field of id.
func (s *State) NextVersion(id int, field Field) uint64 {
	k := FieldKey{ID: id, Field: field}
	s.Issued[k]++
	return s.Issued[k]
}

// Accept reports whether a write with version v may be reflected in Todos,
// that is whether nothing newer for the same field is already there, and
// records it as applied when it may.
func (s *State) Accept(id int, field Field, v uint64) bool {
	k := FieldKey{ID: id, Field: field}
	if v <= s.Applied[k] {
		return false
	}
	s.Applied[k] = v
	return true
}

// Forget drops the request bookkeeping of a removed todo.
func (s *State) Forget(id int) {
	for _, f := range Fields {
		k := FieldKey{ID: id, Field: f}
		delete(s.Issued, k)
		delete(s.Applied, k)
	}
	delete(s.Inflight, Persisted(id))
	delete(s.Pending, Persisted(id))
}

// VisibleTodos returns the todos shown under the current filter.
func (s *State) VisibleTodos() []api.Todo {
	return FilterTodos(s.Todos, s.Filter)
}

// SelectedTodo returns the todo under the cursor.
func (s *State) SelectedTodo() (api.Todo, bool) {
	visible := s.VisibleTodos()
	if s.Cursor < 0 || s.Cursor >= len(visible) {
		return api.Todo{}, false
	}
	return visible[s.Cursor], true
}

// IndexOf returns the position of id in Todos, or -1.
func (s *State) IndexOf(id int) int {
	for i, t := range s.Todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ClampCursor keeps the cursor inside the visible list.
func (s *State) ClampCursor() {
	n := len(s.VisibleTodos())
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}
