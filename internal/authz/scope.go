package authz

import (
	"medical-records-api/internal/domain/entity"

	"gorm.io/gorm"
)

// Scope narrows a query's candidate row set by role before any
// per-object check runs. Repositories apply scopes to all collection
// reads and to single-record lookups, so records outside an actor's
// visible set are indistinguishable from records that do not exist.
type Scope func(*gorm.DB) *gorm.DB

// Unscoped leaves the query untouched
func Unscoped(db *gorm.DB) *gorm.DB {
	return db
}

// Empty matches nothing. Used when a role-required profile could not be
// resolved: the visible set degrades to empty instead of failing the
// request.
func Empty(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// PatientScope limits patients to those the actor attends (doctor) or
// registered (receptionist).
func PatientScope(actor Actor) Scope {
	switch actor.Role {
	case entity.RoleAdmin:
		return Unscoped
	case entity.RoleDoctor:
		doctorID, ok := actor.DoctorID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("patients.attending_doctor_id = ?", doctorID)
		}
	case entity.RoleReceptionist:
		recID, ok := actor.ReceptionistID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("patients.created_by_id = ?", recID)
		}
	}
	return Empty
}

// CaseScope limits cases to those the actor participates in: doctors see
// cases they are assigned to or whose patient they attend, receptionists
// see cases they opened.
func CaseScope(actor Actor) Scope {
	switch actor.Role {
	case entity.RoleAdmin:
		return Unscoped
	case entity.RoleDoctor:
		doctorID, ok := actor.DoctorID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(
				"cases.id IN (SELECT case_id FROM case_assigned_doctors WHERE doctor_id = ?)"+
					" OR cases.patient_id IN (SELECT id FROM patients WHERE attending_doctor_id = ?)",
				doctorID, doctorID,
			)
		}
	case entity.RoleReceptionist:
		recID, ok := actor.ReceptionistID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("cases.created_by_id = ?", recID)
		}
	}
	return Empty
}

// PrescriptionScope limits prescriptions to those the actor authored or
// can reach through case assignment; receptionists reach prescriptions
// through the cases they opened.
func PrescriptionScope(actor Actor) Scope {
	switch actor.Role {
	case entity.RoleAdmin:
		return Unscoped
	case entity.RoleDoctor:
		doctorID, ok := actor.DoctorID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(
				"prescriptions.doctor_id = ?"+
					" OR prescriptions.case_id IN (SELECT case_id FROM case_assigned_doctors WHERE doctor_id = ?)",
				doctorID, doctorID,
			)
		}
	case entity.RoleReceptionist:
		recID, ok := actor.ReceptionistID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(
				"prescriptions.case_id IN (SELECT id FROM cases WHERE created_by_id = ?)",
				recID,
			)
		}
	}
	return Empty
}

// AppointmentScope limits appointments to the doctor they are booked
// with or the receptionist who created them.
func AppointmentScope(actor Actor) Scope {
	switch actor.Role {
	case entity.RoleAdmin:
		return Unscoped
	case entity.RoleDoctor:
		doctorID, ok := actor.DoctorID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("appointments.doctor_id = ?", doctorID)
		}
	case entity.RoleReceptionist:
		recID, ok := actor.ReceptionistID()
		if !ok {
			return Empty
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("appointments.created_by_id = ?", recID)
		}
	}
	return Empty
}
