package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RoleReceptionist.Valid())
	assert.False(t, Role("PATIENT").Valid())
	assert.False(t, Role("").Valid())
}

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.Valid())
	assert.True(t, AppointmentStatusInProgress.Valid())
	assert.True(t, AppointmentStatusCompleted.Valid())
	assert.True(t, AppointmentStatusCancelled.Valid())
	assert.False(t, AppointmentStatus("DONE").Valid())
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"both names", User{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", User{FirstName: "Ada"}, "Ada"},
		{"last only", User{LastName: "Lovelace"}, "Lovelace"},
		{"falls back to username", User{Username: "alovelace"}, "alovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.FullName())
		})
	}
}

func TestCaseAssignedDoctors(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := Case{AssignedDoctors: []Doctor{{ID: a}, {ID: b}}}

	assert.True(t, c.HasAssignedDoctor(a))
	assert.False(t, c.HasAssignedDoctor(uuid.New()))
	assert.ElementsMatch(t, []uuid.UUID{a, b}, c.AssignedDoctorIDs())
}
