// Package api provides a client for the todos REST service.
package api

// Todo is a single item in the owner's list. ID is zero until the server
// has assigned one.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// IsPersisted returns true once the server has assigned an id.
func (t Todo) IsPersisted() bool {
	return t.ID > 0
}

// CreateTodoRequest represents the request body for creating a todo.
type CreateTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// UpdateTodoRequest represents a partial update. Only non-nil fields are sent.
type UpdateTodoRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TitlePatch returns an update carrying only a new title.
func TitlePatch(title string) UpdateTodoRequest {
	return UpdateTodoRequest{Title: &title}
}

// CompletedPatch returns an update carrying only a completion flag.
func CompletedPatch(completed bool) UpdateTodoRequest {
	return UpdateTodoRequest{Completed: &completed}
}

// IsEmpty returns true if the update carries no fields.
func (r UpdateTodoRequest) IsEmpty() bool {
	return r.Title == nil && r.Completed == nil
}

// ApplyTo merges the carried fields into t, leaving every other field as is.
func (r UpdateTodoRequest) ApplyTo(t Todo) Todo {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Completed != nil {
		t.Completed = *r.Completed
	}
	return t
}
