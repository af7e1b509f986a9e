package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"vetapi/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var medicalRecordCols = []string{
	"id", "patient", "veterinarian", "weight", "pulse_rate", "conclusion",
	"reason", "prognosis", "advice", "notes",
	"examination", "previous_history", "treatment_plan", "clinical_signs", "diagnosis", "treatment", "clinical_finding",
	"medications", "treatment_completed", "vaccination_status", "clinical_examination",
	"consent_forms", "medical_report_files", "surgery_report_files", "vaccination_report_files",
	"date", "follow_up_date", "created_at", "updated_at",
}

func medicalRecordRows(id string) *sqlmock.Rows {
	empty := []byte(`[]`)
	return sqlmock.NewRows(medicalRecordCols).AddRow(
		id, "patient-1", "Dr. Shrestha", 12.5, "90", "Stable",
		"", "", "", "",
		empty, empty, empty, empty, []byte(`["Gastritis"]`), empty, empty,
		empty, false, nil, nil,
		empty, empty, empty, empty,
		time.Now(), nil, time.Now(), time.Now(),
	)
}

func TestMedicalRecordPostgres_CreateWithHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMedicalRecordPostgres(db)
	ctx := context.Background()

	rec := &model.MedicalRecord{
		ID:           "record-1",
		Patient:      "patient-1",
		Veterinarian: "Dr. Shrestha",
		Weight:       12.5,
		PulseRate:    "90",
		Conclusion:   "Stable",
		Diagnosis:    []string{"Gastritis"},
		Date:         time.Now(),
	}
	visit := time.Now()

	t.Run("commits insert, history push and appointment update", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO medical_records").
			WillReturnRows(medicalRecordRows("record-1"))
		mock.ExpectExec(`UPDATE patients SET medical_history = medical_history \|\| jsonb_build_array`).
			WithArgs("patient-1", "record-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE patients\s+SET last_appointment = `).
			WithArgs("patient-1", visit, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		out, err := repo.CreateWithHistory(ctx, rec, visit, nil)

		assert.NoError(t, err)
		assert.NotNil(t, out)
		assert.Equal(t, "record-1", out.ID)
		assert.Equal(t, []string{"Gastritis"}, out.Diagnosis)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the history push fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO medical_records").
			WillReturnRows(medicalRecordRows("record-2"))
		mock.ExpectExec(`UPDATE patients SET medical_history = medical_history \|\| jsonb_build_array`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		out, err := repo.CreateWithHistory(ctx, rec, visit, nil)

		assert.Error(t, err)
		assert.Nil(t, out)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMedicalRecordPostgres_ReplaceFiles(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMedicalRecordPostgres(db)
	ctx := context.Background()

	t.Run("writes the named category column", func(t *testing.T) {
		mock.ExpectExec(`UPDATE medical_records SET consent_forms = `).
			WithArgs("record-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ReplaceFiles(ctx, "record-1", model.FileTypeConsentForms, []model.FileRef{{ID: "f1", FileName: "consent.pdf"}})
		assert.NoError(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		err := repo.ReplaceFiles(ctx, "record-1", "passportScans", nil)
		assert.Error(t, err)
	})
}

func TestMedicalRecordPostgres_DeleteByPatient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMedicalRecordPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM medical_records WHERE patient = ?").
		WithArgs("patient-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = repo.DeleteByPatient(ctx, "patient-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
