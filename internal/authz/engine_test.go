package authz

import (
	"testing"

	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminActor() Actor {
	return Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func doctorActor() (Actor, uuid.UUID) {
	doctorID := uuid.New()
	return Actor{
		UserID: uuid.New(),
		Role:   entity.RoleDoctor,
		Doctor: &entity.Doctor{ID: doctorID},
	}, doctorID
}

func receptionistActor() (Actor, uuid.UUID) {
	recID := uuid.New()
	return Actor{
		UserID:       uuid.New(),
		Role:         entity.RoleReceptionist,
		Receptionist: &entity.Receptionist{ID: recID},
	}, recID
}

func TestAuthorizePatient(t *testing.T) {
	doctor, doctorID := doctorActor()
	receptionist, recID := receptionistActor()
	otherRec := uuid.New()

	attended := &entity.Patient{ID: uuid.New(), AttendingDoctorID: doctorID}
	unattended := &entity.Patient{ID: uuid.New(), AttendingDoctorID: uuid.New()}
	registered := &entity.Patient{ID: uuid.New(), CreatedByID: &recID}
	foreign := &entity.Patient{ID: uuid.New(), CreatedByID: &otherRec}
	orphan := &entity.Patient{ID: uuid.New()}

	tests := []struct {
		name    string
		actor   Actor
		action  Action
		obj     *entity.Patient
		allowed bool
	}{
		{"admin can do anything", adminActor(), ActionDelete, unattended, true},
		{"doctor reads attended patient", doctor, ActionRead, attended, true},
		{"doctor updates attended patient", doctor, ActionUpdate, attended, true},
		{"doctor cannot read unattended patient", doctor, ActionRead, unattended, false},
		{"doctor cannot update unattended patient", doctor, ActionUpdate, unattended, false},
		{"doctor cannot create patients", doctor, ActionCreate, nil, false},
		{"doctor cannot delete patients", doctor, ActionDelete, attended, false},
		{"receptionist creates patients", receptionist, ActionCreate, nil, true},
		{"receptionist reads own registration", receptionist, ActionRead, registered, true},
		{"receptionist updates own registration", receptionist, ActionUpdate, registered, true},
		{"receptionist cannot touch another's registration", receptionist, ActionUpdate, foreign, false},
		{"receptionist cannot touch unowned record", receptionist, ActionRead, orphan, false},
		{"receptionist cannot delete patients", receptionist, ActionDelete, registered, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.actor, tt.action, ResourcePatient, tt.obj)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestAuthorizeCase(t *testing.T) {
	doctor, doctorID := doctorActor()
	receptionist, recID := receptionistActor()

	assignedCase := &entity.Case{
		ID:              uuid.New(),
		AssignedDoctors: []entity.Doctor{{ID: doctorID}},
	}
	attendingCase := &entity.Case{
		ID:      uuid.New(),
		Patient: entity.Patient{AttendingDoctorID: doctorID},
	}
	strangerCase := &entity.Case{
		ID:              uuid.New(),
		Patient:         entity.Patient{AttendingDoctorID: uuid.New()},
		AssignedDoctors: []entity.Doctor{{ID: uuid.New()}},
	}
	ownCase := &entity.Case{ID: uuid.New(), CreatedByID: &recID}

	tests := []struct {
		name    string
		actor   Actor
		action  Action
		obj     *entity.Case
		allowed bool
	}{
		{"doctor reads assigned case", doctor, ActionRead, assignedCase, true},
		{"doctor updates attending case", doctor, ActionUpdate, attendingCase, true},
		{"doctor cannot read unrelated case", doctor, ActionRead, strangerCase, false},
		{"doctor cannot create cases", doctor, ActionCreate, nil, false},
		{"doctor cannot delete cases", doctor, ActionDelete, assignedCase, false},
		{"receptionist creates cases", receptionist, ActionCreate, nil, true},
		{"receptionist updates own case", receptionist, ActionUpdate, ownCase, true},
		{"receptionist cannot update another's case", receptionist, ActionUpdate, strangerCase, false},
		{"receptionist cannot delete own case", receptionist, ActionDelete, ownCase, false},
		{"admin deletes cases", adminActor(), ActionDelete, strangerCase, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.actor, tt.action, ResourceCase, tt.obj)
			assert.Equal(t, tt.allowed, d.Allowed)
		})
	}
}

func TestAuthorizePrescription(t *testing.T) {
	doctor, doctorID := doctorActor()
	receptionist, _ := receptionistActor()

	own := &entity.Prescription{ID: uuid.New(), DoctorID: doctorID}
	foreign := &entity.Prescription{ID: uuid.New(), DoctorID: uuid.New()}

	tests := []struct {
		name    string
		actor   Actor
		action  Action
		obj     *entity.Prescription
		allowed bool
	}{
		{"doctor creates prescriptions", doctor, ActionCreate, nil, true},
		{"doctor updates own prescription", doctor, ActionUpdate, own, true},
		{"doctor cannot update another doctor's prescription", doctor, ActionUpdate, foreign, false},
		{"doctor cannot delete prescriptions", doctor, ActionDelete, own, false},
		{"receptionist reads prescriptions", receptionist, ActionRead, own, true},
		{"receptionist cannot create prescriptions", receptionist, ActionCreate, nil, false},
		{"receptionist cannot update prescriptions", receptionist, ActionUpdate, own, false},
		{"admin deletes prescriptions", adminActor(), ActionDelete, foreign, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.actor, tt.action, ResourcePrescription, tt.obj)
			assert.Equal(t, tt.allowed, d.Allowed)
		})
	}
}

func TestAuthorizeAppointment(t *testing.T) {
	doctor, doctorID := doctorActor()
	receptionist, recID := receptionistActor()

	withDoctor := &entity.Appointment{ID: uuid.New(), DoctorID: doctorID}
	withOther := &entity.Appointment{ID: uuid.New(), DoctorID: uuid.New()}
	ownBooking := &entity.Appointment{ID: uuid.New(), CreatedByID: &recID}

	tests := []struct {
		name    string
		actor   Actor
		action  Action
		obj     *entity.Appointment
		allowed bool
	}{
		{"doctor reads own appointment", doctor, ActionRead, withDoctor, true},
		{"doctor updates own appointment", doctor, ActionUpdate, withDoctor, true},
		{"doctor cannot read another doctor's appointment", doctor, ActionRead, withOther, false},
		{"doctor cannot create appointments", doctor, ActionCreate, nil, false},
		{"doctor cannot delete appointments", doctor, ActionDelete, withDoctor, false},
		{"receptionist creates appointments", receptionist, ActionCreate, nil, true},
		{"receptionist updates own booking", receptionist, ActionUpdate, ownBooking, true},
		{"receptionist cannot update another's booking", receptionist, ActionUpdate, withOther, false},
		{"receptionist deletes appointments", receptionist, ActionDelete, ownBooking, true},
		{"admin is unrestricted", adminActor(), ActionUpdate, withOther, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.actor, tt.action, ResourceAppointment, tt.obj)
			assert.Equal(t, tt.allowed, d.Allowed)
		})
	}
}

func TestAuthorizeUser(t *testing.T) {
	doctor, _ := doctorActor()
	receptionist, _ := receptionistActor()

	assert.True(t, Authorize(adminActor(), ActionList, ResourceUser, nil).Allowed)
	assert.False(t, Authorize(doctor, ActionList, ResourceUser, nil).Allowed)
	assert.False(t, Authorize(receptionist, ActionRead, ResourceUser, nil).Allowed)
}

func TestMissingProfileDenies(t *testing.T) {
	// A doctor token whose profile row was removed must not fall through
	// to an allow on object-level checks.
	bareDoctor := Actor{UserID: uuid.New(), Role: entity.RoleDoctor}
	bareReceptionist := Actor{UserID: uuid.New(), Role: entity.RoleReceptionist}

	patient := &entity.Patient{ID: uuid.New(), AttendingDoctorID: uuid.New()}

	assert.False(t, Authorize(bareDoctor, ActionRead, ResourcePatient, patient).Allowed)
	assert.False(t, Authorize(bareReceptionist, ActionRead, ResourcePatient, patient).Allowed)
	assert.False(t, HasCaseAccess(bareDoctor, &entity.Case{}))
}

func TestCanUpdateCaseAssignments(t *testing.T) {
	doctor, doctorID := doctorActor()
	other := uuid.New()

	c := &entity.Case{
		AssignedDoctors: []entity.Doctor{{ID: doctorID}, {ID: other}},
	}

	t.Run("admin may change the set", func(t *testing.T) {
		d := CanUpdateCaseAssignments(adminActor(), c, []uuid.UUID{other})
		assert.True(t, d.Allowed)
	})

	t.Run("identical set passes for non-admins", func(t *testing.T) {
		// Order must not matter
		d := CanUpdateCaseAssignments(doctor, c, []uuid.UUID{other, doctorID})
		assert.True(t, d.Allowed)
	})

	t.Run("differing set is refused for non-admins", func(t *testing.T) {
		d := CanUpdateCaseAssignments(doctor, c, []uuid.UUID{doctorID})
		require.False(t, d.Allowed)
		assert.Contains(t, d.Reason, "administrators")
	})
}

func TestCanUpdateAppointmentFields(t *testing.T) {
	doctor, _ := doctorActor()
	receptionist, _ := receptionistActor()

	t.Run("doctor limited to status and notes", func(t *testing.T) {
		assert.True(t, CanUpdateAppointmentFields(doctor, NewFieldSet("status")).Allowed)
		assert.True(t, CanUpdateAppointmentFields(doctor, NewFieldSet("status", "notes")).Allowed)
		assert.False(t, CanUpdateAppointmentFields(doctor, NewFieldSet("status", "scheduled_at")).Allowed)
		assert.False(t, CanUpdateAppointmentFields(doctor, NewFieldSet("patient")).Allowed)
	})

	t.Run("receptionist and admin unrestricted", func(t *testing.T) {
		full := NewFieldSet("patient", "doctor", "case", "scheduled_at", "status", "notes")
		assert.True(t, CanUpdateAppointmentFields(receptionist, full).Allowed)
		assert.True(t, CanUpdateAppointmentFields(adminActor(), full).Allowed)
	})
}

func TestCanUpdatePrescriptionFields(t *testing.T) {
	doctor, _ := doctorActor()

	assert.True(t, CanUpdatePrescriptionFields(doctor, NewFieldSet()).Allowed)
	assert.False(t, CanUpdatePrescriptionFields(doctor, NewFieldSet("case")).Allowed)
	assert.False(t, CanUpdatePrescriptionFields(doctor, NewFieldSet("patient")).Allowed)
	assert.False(t, CanUpdatePrescriptionFields(doctor, NewFieldSet("doctor")).Allowed)
	assert.True(t, CanUpdatePrescriptionFields(adminActor(), NewFieldSet("case", "patient", "doctor")).Allowed)
}

func TestHasCaseAccess(t *testing.T) {
	doctor, doctorID := doctorActor()

	attending := &entity.Case{Patient: entity.Patient{AttendingDoctorID: doctorID}}
	assigned := &entity.Case{
		Patient:         entity.Patient{AttendingDoctorID: uuid.New()},
		AssignedDoctors: []entity.Doctor{{ID: doctorID}},
	}
	unrelated := &entity.Case{Patient: entity.Patient{AttendingDoctorID: uuid.New()}}

	assert.True(t, HasCaseAccess(doctor, attending))
	assert.True(t, HasCaseAccess(doctor, assigned))
	assert.False(t, HasCaseAccess(doctor, unrelated))
}
