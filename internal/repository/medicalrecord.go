package repository

import (
	"context"
	"time"

	"vetapi/internal/model"
)

// MedicalRecordRepository defines data access for medical records.
type MedicalRecordRepository interface {
	// Create inserts the record without touching the patient document.
	Create(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error)

	// CreateWithHistory inserts the record, pushes its id onto the patient's
	// medical_history and updates the appointment timestamps, all inside one
	// SQL transaction.
	CreateWithHistory(ctx context.Context, rec *model.MedicalRecord, lastAppointment time.Time, nextAppointment *time.Time) (*model.MedicalRecord, error)

	FindByID(ctx context.Context, id string) (*model.MedicalRecord, error)

	List(ctx context.Context) ([]model.MedicalRecord, error)

	ListByPatient(ctx context.Context, patientID string) ([]model.MedicalRecord, error)

	Update(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error)

	Delete(ctx context.Context, id string) error

	// DeleteByPatient removes every record of the patient.
	DeleteByPatient(ctx context.Context, patientID string) error

	// ReplaceFiles overwrites one embedded file category of the record.
	ReplaceFiles(ctx context.Context, id, fileType string, files []model.FileRef) error

	// SetTreatmentCompleted stores the flag.
	SetTreatmentCompleted(ctx context.Context, id string, completed bool) error
}
