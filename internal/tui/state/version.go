package state

import "github.com/hy4ri/todos-tui/internal/api"

// Field names a todo attribute that can be written independently.
type Field int

const (
	FieldTitle Field = iota
	FieldCompleted
)

// Fields lists every writable field.
var Fields = []Field{FieldTitle, FieldCompleted}

func (f Field) String() string {
	if f == FieldTitle {
		return "title"
	}
	return "completed"
}

// FieldKey identifies one field of one persisted todo.
type FieldKey struct {
	ID    int
	Field Field
}

// PatchFields returns the fields a patch writes.
func PatchFields(patch api.UpdateTodoRequest) []Field {
	var fields []Field
	if patch.Title != nil {
		fields = append(fields, FieldTitle)
	}
	if patch.Completed != nil {
		fields = append(fields, FieldCompleted)
	}
	return fields
}

// Versions maps each field of a write to its version.
type Versions map[Field]uint64

// Only returns the part of patch that writes one of fields.
func Only(patch api.UpdateTodoRequest, fields ...Field) api.UpdateTodoRequest {
	var out api.UpdateTodoRequest
	for _, f := range fields {
		switch f {
		case FieldTitle:
			out.Title = patch.Title
		case FieldCompleted:
			out.Completed = patch.Completed
		}
	}
	return out
}
