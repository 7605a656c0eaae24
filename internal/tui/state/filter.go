package state

import (
	"fmt"
	"strings"

	"github.com/hy4ri/todos-tui/internal/api"
)

// Filter is the display-only partition of the list.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// String returns the filter's display name.
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next returns the following filter, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Prev returns the preceding filter, wrapping around.
func (f Filter) Prev() Filter {
	return Filters[(int(f)+len(Filters)-1)%len(Filters)]
}

// ParseFilter accepts a filter name in any case. Empty means All.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Match reports whether a todo belongs in the filtered view.
func (f Filter) Match(t api.Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// FilterTodos returns the todos visible under f, preserving their order.
// The input slice is never modified.
func FilterTodos(todos []api.Todo, f Filter) []api.Todo {
	out := make([]api.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ActiveCount returns the number of todos not yet completed.
func ActiveCount(todos []api.Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// AllCompleted reports whether every todo is completed. True for an empty list.
func AllCompleted(todos []api.Todo) bool {
	return ActiveCount(todos) == 0
}
