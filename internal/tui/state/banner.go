package state

// ErrorKind classifies the transient error banner.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrLoad
	ErrAdd
	ErrDelete
	ErrUpdate
	ErrEmptyTitle
)

// Message returns the text shown in the banner.
func (k ErrorKind) Message() string {
	switch k {
	case ErrLoad:
		return "Unable to load todos"
	case ErrAdd:
		return "Unable to add a todo"
	case ErrDelete:
		return "Unable to delete a todo"
	case ErrUpdate:
		return "Unable to update a todo"
	case ErrEmptyTitle:
		return "Title should not be empty"
	default:
		return ""
	}
}

func (k ErrorKind) String() string {
	switch k {
	case ErrLoad:
		return "load"
	case ErrAdd:
		return "add"
	case ErrDelete:
		return "delete"
	case ErrUpdate:
		return "update"
	case ErrEmptyTitle:
		return "empty-title"
	default:
		return "none"
	}
}

// Banner holds at most one active error. Generation changes on every
// show or dismiss so that an expiry scheduled earlier can be recognised
// as stale.
type Banner struct {
	Kind       ErrorKind
	Generation uint64
}

// Show replaces the active error and returns the generation its expiry
// must carry.
func (b *Banner) Show(kind ErrorKind) uint64 {
	b.Kind = kind
	b.Generation++
	return b.Generation
}

// Dismiss clears the banner immediately and invalidates pending expiries.
func (b *Banner) Dismiss() {
	b.Kind = ErrNone
	b.Generation++
}

// Expire clears the banner if gen is still current.
func (b *Banner) Expire(gen uint64) bool {
	if gen != b.Generation {
		return false
	}
	b.Kind = ErrNone
	return true
}

// Visible reports whether an error is shown.
func (b Banner) Visible() bool {
	return b.Kind != ErrNone
}
