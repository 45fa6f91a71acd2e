package usecase

import (
	"testing"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirePrescriberAccess(t *testing.T) {
	doctorID := uuid.New()
	doctor := authz.Actor{
		UserID: uuid.New(),
		Role:   entity.RoleDoctor,
		Doctor: &entity.Doctor{ID: doctorID},
	}
	admin := authz.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	authored := func(c entity.Case) *entity.Prescription {
		return &entity.Prescription{
			ID:       uuid.New(),
			DoctorID: doctorID,
			CaseID:   c.ID,
			Case:     c,
		}
	}

	attendedCase := entity.Case{
		ID:      uuid.New(),
		Patient: entity.Patient{ID: uuid.New(), AttendingDoctorID: doctorID},
	}
	assignedCase := entity.Case{
		ID:              uuid.New(),
		Patient:         entity.Patient{ID: uuid.New(), AttendingDoctorID: uuid.New()},
		AssignedDoctors: []entity.Doctor{{ID: doctorID}},
	}
	// The author was removed from the assigned set and another doctor
	// attends the patient.
	revokedCase := entity.Case{
		ID:      uuid.New(),
		Patient: entity.Patient{ID: uuid.New(), AttendingDoctorID: uuid.New()},
	}

	tests := []struct {
		name         string
		actor        authz.Actor
		prescription *entity.Prescription
		wantErr      error
	}{
		{"author attending the patient", doctor, authored(attendedCase), nil},
		{"author assigned to the case", doctor, authored(assignedCase), nil},
		{"author removed from the case", doctor, authored(revokedCase), ErrCaseAccessRequired},
		{"admin never needs case access", admin, authored(revokedCase), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requirePrescriberAccess(tt.actor, tt.prescription)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequirePrescriberAccessMissingProfile(t *testing.T) {
	ghost := authz.Actor{UserID: uuid.New(), Role: entity.RoleDoctor}
	prescription := &entity.Prescription{
		ID:   uuid.New(),
		Case: entity.Case{ID: uuid.New()},
	}

	assert.ErrorIs(t, requirePrescriberAccess(ghost, prescription), ErrCaseAccessRequired)
}
