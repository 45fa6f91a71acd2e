package authz

import (
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Deny reasons reported to callers. Phrasing is part of the API surface
// the clients show to users.
const (
	reasonUnknownRole         = "unknown role"
	reasonDoctorProfileGone   = "doctor profile missing"
	reasonReceptionistGone    = "receptionist profile missing"
	reasonNotRecordOwner      = "you did not create this record"
	reasonNotAttending        = "you are not the attending doctor for this patient"
	reasonNotCaseParticipant  = "you are not assigned to this case"
	reasonNotPrescriber       = "you did not author this prescription"
	reasonNotAppointmentOwner = "this appointment is not assigned to you"
	reasonAdminOnly           = "only administrators may perform this action"
	reasonNoCreate            = "your role cannot create this resource"
	reasonNoDelete            = "your role cannot delete this resource"
	reasonNoUpdate            = "your role cannot update this resource"
	reasonAssignmentsLocked   = "only administrators can change doctor assignments"
	reasonAppointmentFields   = "doctors can only update status and notes"
	reasonPrescriptionFields  = "doctors can only edit prescription details"
)

// Authorize is the central decision function: given an actor, an action
// and a resource it returns allow or deny with a reason. For READ, UPDATE
// and DELETE on existing records, obj carries the target entity so
// ownership chains can be checked; for LIST and CREATE obj is nil.
// Field-restricted updates have dedicated entry points below that take
// the incoming field set as well.
func Authorize(actor Actor, action Action, resource Resource, obj interface{}) Decision {
	switch resource {
	case ResourcePatient:
		p, _ := obj.(*entity.Patient)
		return authorizePatient(actor, action, p)
	case ResourceCase:
		c, _ := obj.(*entity.Case)
		return authorizeCase(actor, action, c)
	case ResourcePrescription:
		rx, _ := obj.(*entity.Prescription)
		return authorizePrescription(actor, action, rx)
	case ResourceAppointment:
		ap, _ := obj.(*entity.Appointment)
		return authorizeAppointment(actor, action, ap)
	case ResourceUser:
		return authorizeUser(actor)
	}
	return Deny("unknown resource")
}

func authorizePatient(actor Actor, action Action, p *entity.Patient) Decision {
	switch actor.Role {
	case entity.RoleAdmin:
		return Allow()
	case entity.RoleDoctor:
		switch action {
		case ActionList:
			return Allow()
		case ActionRead, ActionUpdate:
			doctorID, ok := actor.DoctorID()
			if !ok {
				return Deny(reasonDoctorProfileGone)
			}
			if p != nil && p.AttendingDoctorID != doctorID {
				return Deny(reasonNotAttending)
			}
			return Allow()
		case ActionCreate:
			return Deny(reasonNoCreate)
		case ActionDelete:
			return Deny(reasonNoDelete)
		}
	case entity.RoleReceptionist:
		switch action {
		case ActionList, ActionCreate:
			return Allow()
		case ActionRead, ActionUpdate:
			if p == nil {
				return Allow()
			}
			return requireCreatedBy(actor, p.CreatedByID)
		case ActionDelete:
			return Deny(reasonNoDelete)
		}
	}
	return Deny(reasonUnknownRole)
}

func authorizeCase(actor Actor, action Action, c *entity.Case) Decision {
	switch actor.Role {
	case entity.RoleAdmin:
		return Allow()
	case entity.RoleDoctor:
		switch action {
		case ActionList:
			return Allow()
		case ActionRead, ActionUpdate:
			if c == nil {
				return Allow()
			}
			return requireCaseParticipant(actor, c)
		case ActionCreate:
			return Deny(reasonNoCreate)
		case ActionDelete:
			return Deny(reasonAdminOnly)
		}
	case entity.RoleReceptionist:
		switch action {
		case ActionList, ActionCreate:
			return Allow()
		case ActionRead, ActionUpdate:
			if c == nil {
				return Allow()
			}
			return requireCreatedBy(actor, c.CreatedByID)
		case ActionDelete:
			return Deny(reasonAdminOnly)
		}
	}
	return Deny(reasonUnknownRole)
}

func authorizePrescription(actor Actor, action Action, rx *entity.Prescription) Decision {
	switch actor.Role {
	case entity.RoleAdmin:
		return Allow()
	case entity.RoleDoctor:
		switch action {
		case ActionList, ActionRead, ActionCreate:
			return Allow()
		case ActionUpdate:
			doctorID, ok := actor.DoctorID()
			if !ok {
				return Deny(reasonDoctorProfileGone)
			}
			if rx != nil && rx.DoctorID != doctorID {
				return Deny(reasonNotPrescriber)
			}
			return Allow()
		case ActionDelete:
			return Deny(reasonAdminOnly)
		}
	case entity.RoleReceptionist:
		switch action {
		case ActionList, ActionRead:
			return Allow()
		case ActionCreate, ActionUpdate:
			return Deny("only doctors or administrators can manage prescriptions")
		case ActionDelete:
			return Deny(reasonAdminOnly)
		}
	}
	return Deny(reasonUnknownRole)
}

func authorizeAppointment(actor Actor, action Action, ap *entity.Appointment) Decision {
	switch actor.Role {
	case entity.RoleAdmin:
		return Allow()
	case entity.RoleDoctor:
		switch action {
		case ActionList:
			return Allow()
		case ActionRead, ActionUpdate:
			doctorID, ok := actor.DoctorID()
			if !ok {
				return Deny(reasonDoctorProfileGone)
			}
			if ap != nil && ap.DoctorID != doctorID {
				return Deny(reasonNotAppointmentOwner)
			}
			return Allow()
		case ActionCreate:
			return Deny(reasonNoCreate)
		case ActionDelete:
			return Deny(reasonNoDelete)
		}
	case entity.RoleReceptionist:
		switch action {
		case ActionList, ActionCreate, ActionDelete:
			return Allow()
		case ActionRead, ActionUpdate:
			if ap == nil {
				return Allow()
			}
			return requireCreatedBy(actor, ap.CreatedByID)
		}
	}
	return Deny(reasonUnknownRole)
}

func authorizeUser(actor Actor) Decision {
	if actor.Role == entity.RoleAdmin {
		return Allow()
	}
	return Deny(reasonAdminOnly)
}

// CanUpdateCaseAssignments gates the assigned_doctors field of a case
// update. Non-admin doctors may repeat the existing set verbatim but any
// differing set is refused; the rest of the payload is rejected with it.
func CanUpdateCaseAssignments(actor Actor, c *entity.Case, incoming []uuid.UUID) Decision {
	if actor.Role == entity.RoleAdmin {
		return Allow()
	}
	if SameIDSet(c.AssignedDoctorIDs(), incoming) {
		return Allow()
	}
	return Deny(reasonAssignmentsLocked)
}

// CanUpdateAppointmentFields gates a field-restricted appointment update.
// Doctors may only touch status and notes; a payload containing any other
// field is wholly denied.
func CanUpdateAppointmentFields(actor Actor, fields FieldSet) Decision {
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleReceptionist:
		return Allow()
	case entity.RoleDoctor:
		if fields.SubsetOf("status", "notes") {
			return Allow()
		}
		return Deny(reasonAppointmentFields)
	}
	return Deny(reasonUnknownRole)
}

// CanUpdatePrescriptionFields gates which prescription fields a doctor
// may change: case, patient and author are locked once written.
func CanUpdatePrescriptionFields(actor Actor, fields FieldSet) Decision {
	if actor.Role == entity.RoleAdmin {
		return Allow()
	}
	if fields.Has("case") || fields.Has("patient") || fields.Has("doctor") {
		return Deny(reasonPrescriptionFields)
	}
	return Allow()
}

// HasCaseAccess reports whether a doctor actor participates in the case,
// either as the patient's attending doctor or through the assigned set.
// Case must be loaded with Patient and AssignedDoctors.
func HasCaseAccess(actor Actor, c *entity.Case) bool {
	doctorID, ok := actor.DoctorID()
	if !ok {
		return false
	}
	if c.Patient.AttendingDoctorID == doctorID {
		return true
	}
	return c.HasAssignedDoctor(doctorID)
}

func requireCaseParticipant(actor Actor, c *entity.Case) Decision {
	if _, ok := actor.DoctorID(); !ok {
		return Deny(reasonDoctorProfileGone)
	}
	if !HasCaseAccess(actor, c) {
		return Deny(reasonNotCaseParticipant)
	}
	return Allow()
}

func requireCreatedBy(actor Actor, createdBy *uuid.UUID) Decision {
	recID, ok := actor.ReceptionistID()
	if !ok {
		return Deny(reasonReceptionistGone)
	}
	if createdBy == nil || *createdBy != recID {
		return Deny(reasonNotRecordOwner)
	}
	return Allow()
}

