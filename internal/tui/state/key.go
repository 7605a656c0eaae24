package state

import "strconv"

// ItemKey identifies a row that can have a request in flight: either a
// persisted todo or the placeholder shown while a create is pending.
type ItemKey struct {
	id       int
	creating bool
}

// PendingCreation is the key of the placeholder row.
var PendingCreation = ItemKey{creating: true}

// Persisted returns the key of a server-assigned todo id.
func Persisted(id int) ItemKey {
	return ItemKey{id: id}
}

// ID returns the todo id and false for the placeholder.
func (k ItemKey) ID() (int, bool) {
	if k.creating {
		return 0, false
	}
	return k.id, true
}

func (k ItemKey) String() string {
	if k.creating {
		return "pending-creation"
	}
	return strconv.Itoa(k.id)
}
