package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFieldSetSubsetOf(t *testing.T) {
	assert.True(t, NewFieldSet().SubsetOf("status", "notes"))
	assert.True(t, NewFieldSet("notes").SubsetOf("status", "notes"))
	assert.False(t, NewFieldSet("notes", "patient").SubsetOf("status", "notes"))
}

func TestFieldSetAddHas(t *testing.T) {
	fs := NewFieldSet()
	assert.False(t, fs.Has("case"))
	fs.Add("case")
	assert.True(t, fs.Has("case"))
}

func TestSameIDSet(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	tests := []struct {
		name  string
		left  []uuid.UUID
		right []uuid.UUID
		equal bool
	}{
		{"both empty", nil, []uuid.UUID{}, true},
		{"order ignored", []uuid.UUID{a, b}, []uuid.UUID{b, a}, true},
		{"duplicates ignored", []uuid.UUID{a, a, b}, []uuid.UUID{b, a}, true},
		{"missing element", []uuid.UUID{a, b}, []uuid.UUID{a}, false},
		{"disjoint", []uuid.UUID{a}, []uuid.UUID{b}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, SameIDSet(tt.left, tt.right))
		})
	}
}
