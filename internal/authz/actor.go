package authz

import (
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated identity every authorization decision is
// made against. Role-scoped profiles are resolved per request; a nil
// profile for a role that requires one degrades to an empty visible set
// rather than an error.
type Actor struct {
	UserID       uuid.UUID
	Role         entity.Role
	Doctor       *entity.Doctor
	Receptionist *entity.Receptionist
}

// DoctorID returns the actor's doctor profile id, if any
func (a Actor) DoctorID() (uuid.UUID, bool) {
	if a.Doctor == nil {
		return uuid.Nil, false
	}
	return a.Doctor.ID, true
}

// ReceptionistID returns the actor's receptionist profile id, if any
func (a Actor) ReceptionistID() (uuid.UUID, bool) {
	if a.Receptionist == nil {
		return uuid.Nil, false
	}
	return a.Receptionist.ID, true
}

// Action is a coarse operation category evaluated by the engine
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names an authorizable resource type
type Resource string

const (
	ResourcePatient      Resource = "patient"
	ResourceCase         Resource = "case"
	ResourcePrescription Resource = "prescription"
	ResourceAppointment  Resource = "appointment"
	ResourceUser         Resource = "user"
)

// Decision is the result of an authorization check. Reason is set only
// on denial.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns a permitting decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a refusing decision carrying the reason reported to the
// caller
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}
