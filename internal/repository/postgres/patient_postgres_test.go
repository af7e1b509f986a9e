package postgres

import (
	"context"
	"testing"
	"time"

	"vetapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func patientRows(id string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "species", "breed", "age", "sex", "pet_id", "registration_number", "client",
		"last_appointment", "next_appointment",
		"medical_history", "vaccination_history", "blood_reports", "surgery_history", "attachments",
		"created_at", "updated_at",
	}).AddRow(
		id, "Bruno", "Canine", "Labrador", "3 years", "MALE", "PET-001", "REG-001", "client-1",
		nil, nil,
		[]byte(`["mr1"]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`),
		time.Now(), time.Now(),
	)
}

func TestPatientPostgres_FindByNaturalKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPatientPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM patients WHERE pet_id = \$1 OR registration_number = \$1`).
		WithArgs("PET-001").
		WillReturnRows(patientRows("patient-1"))

	p, err := repo.FindByNaturalKey(ctx, "PET-001")

	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, "patient-1", p.ID)
	assert.Equal(t, []string{"mr1"}, p.MedicalHistory)
	assert.Empty(t, p.SurgeryHistory)
	assert.Nil(t, p.LastAppointment)
}

func TestPatientPostgres_NaturalKeyTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPatientPostgres(db)
	ctx := context.Background()

	t.Run("taken", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("PET-001", "REG-001", "").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		taken, err := repo.NaturalKeyTaken(ctx, "PET-001", "REG-001", "")

		assert.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("free", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("PET-002", "REG-002", "patient-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		taken, err := repo.NaturalKeyTaken(ctx, "PET-002", "REG-002", "patient-1")

		assert.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestPatientPostgres_AppendHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPatientPostgres(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE patients SET surgery_history = surgery_history \|\| jsonb_build_array`).
		WithArgs("patient-1", "surgery-4").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.AppendHistory(ctx, "patient-1", repository.SurgeryHistory, "surgery-4")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientPostgres_SetAppointments(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPatientPostgres(db)
	ctx := context.Background()

	last := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE patients\s+SET last_appointment = COALESCE`).
		WithArgs("patient-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetAppointments(ctx, "patient-1", &last, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
