package authz

import "github.com/google/uuid"

// FieldSet is the set of field names present in an update payload.
// Presence is what matters for field-restricted roles: re-submitting an
// unchanged value for a forbidden field still counts as touching it.
type FieldSet map[string]struct{}

// NewFieldSet builds a set from the given field names
func NewFieldSet(names ...string) FieldSet {
	fs := make(FieldSet, len(names))
	for _, n := range names {
		fs[n] = struct{}{}
	}
	return fs
}

// Add records a field as present
func (fs FieldSet) Add(name string) {
	fs[name] = struct{}{}
}

// Has reports whether the field is present
func (fs FieldSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

// SubsetOf reports whether every present field is in the allowed list
func (fs FieldSet) SubsetOf(allowed ...string) bool {
	for name := range fs {
		found := false
		for _, a := range allowed {
			if name == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SameIDSet compares two id lists as sets, ignoring order and duplicates
func SameIDSet(a, b []uuid.UUID) bool {
	as := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		as[id] = struct{}{}
	}
	bs := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		bs[id] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for id := range as {
		if _, ok := bs[id]; !ok {
			return false
		}
	}
	return true
}
