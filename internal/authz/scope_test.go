package authz

import (
	"testing"

	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// dryRunDB builds SQL without a live connection so scope clauses can be
// inspected.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func scopeSQL(t *testing.T, table string, scope Scope) string {
	t.Helper()
	var rows []map[string]interface{}
	stmt := scope(dryRunDB(t).Table(table)).Find(&rows)
	require.NoError(t, stmt.Error)
	return stmt.Statement.SQL.String()
}

func TestPatientScope(t *testing.T) {
	doctor, _ := doctorActor()
	receptionist, _ := receptionistActor()

	t.Run("admin sees all", func(t *testing.T) {
		sql := scopeSQL(t, "patients", PatientScope(adminActor()))
		assert.NotContains(t, sql, "WHERE")
	})

	t.Run("doctor filtered by attending", func(t *testing.T) {
		sql := scopeSQL(t, "patients", PatientScope(doctor))
		assert.Contains(t, sql, "patients.attending_doctor_id")
	})

	t.Run("receptionist filtered by creator", func(t *testing.T) {
		sql := scopeSQL(t, "patients", PatientScope(receptionist))
		assert.Contains(t, sql, "patients.created_by_id")
	})

	t.Run("missing profile yields empty set", func(t *testing.T) {
		bare := Actor{UserID: uuid.New(), Role: entity.RoleDoctor}
		sql := scopeSQL(t, "patients", PatientScope(bare))
		assert.Contains(t, sql, "1 = 0")
	})
}

func TestCaseScope(t *testing.T) {
	doctor, _ := doctorActor()
	receptionist, _ := receptionistActor()

	t.Run("doctor reaches assigned and attending cases", func(t *testing.T) {
		sql := scopeSQL(t, "cases", CaseScope(doctor))
		assert.Contains(t, sql, "case_assigned_doctors")
		assert.Contains(t, sql, "attending_doctor_id")
	})

	t.Run("receptionist limited to own cases", func(t *testing.T) {
		sql := scopeSQL(t, "cases", CaseScope(receptionist))
		assert.Contains(t, sql, "cases.created_by_id")
	})
}

func TestPrescriptionScope(t *testing.T) {
	doctor, _ := doctorActor()
	receptionist, _ := receptionistActor()

	t.Run("doctor reaches authored and case-assigned prescriptions", func(t *testing.T) {
		sql := scopeSQL(t, "prescriptions", PrescriptionScope(doctor))
		assert.Contains(t, sql, "prescriptions.doctor_id")
		assert.Contains(t, sql, "case_assigned_doctors")
		// Attending alone does not grant prescription visibility
		assert.NotContains(t, sql, "attending_doctor_id")
	})

	t.Run("receptionist reaches prescriptions through own cases", func(t *testing.T) {
		sql := scopeSQL(t, "prescriptions", PrescriptionScope(receptionist))
		assert.Contains(t, sql, "created_by_id")
	})
}

func TestAppointmentScope(t *testing.T) {
	doctor, _ := doctorActor()
	receptionist, _ := receptionistActor()

	t.Run("doctor limited to own appointments", func(t *testing.T) {
		sql := scopeSQL(t, "appointments", AppointmentScope(doctor))
		assert.Contains(t, sql, "appointments.doctor_id")
	})

	t.Run("receptionist limited to own bookings", func(t *testing.T) {
		sql := scopeSQL(t, "appointments", AppointmentScope(receptionist))
		assert.Contains(t, sql, "appointments.created_by_id")
	})

	t.Run("missing profile yields empty set", func(t *testing.T) {
		bare := Actor{UserID: uuid.New(), Role: entity.RoleReceptionist}
		sql := scopeSQL(t, "appointments", AppointmentScope(bare))
		assert.Contains(t, sql, "1 = 0")
	})
}
