package repository

import (
	"context"
	"time"

	"vetapi/internal/model"
)

// PatientRepository defines data access for patients.
type PatientRepository interface {
	Create(ctx context.Context, p *model.Patient) (*model.Patient, error)

	FindByID(ctx context.Context, id string) (*model.Patient, error)

	// FindByNaturalKey returns the patient whose petId or registrationNumber
	// equals identifier.
	FindByNaturalKey(ctx context.Context, identifier string) (*model.Patient, error)

	// NaturalKeyTaken reports whether any patient other than excludeID holds
	// one of the given natural keys. Empty keys are ignored.
	NaturalKeyTaken(ctx context.Context, petID, registrationNumber, excludeID string) (bool, error)

	List(ctx context.Context) ([]model.Patient, error)

	ListByClient(ctx context.Context, clientID string) ([]model.Patient, error)

	Update(ctx context.Context, p *model.Patient) (*model.Patient, error)

	Delete(ctx context.Context, id string) error

	// AppendHistory pushes childID onto the named back-reference list.
	AppendHistory(ctx context.Context, patientID string, list HistoryList, childID string) error

	// RemoveHistory pulls childID from the named back-reference list.
	RemoveHistory(ctx context.Context, patientID string, list HistoryList, childID string) error

	// SetAppointments updates the appointment timestamps; a nil value leaves
	// the stored one untouched.
	SetAppointments(ctx context.Context, patientID string, last, next *time.Time) error

	// ReplaceAttachments overwrites the embedded attachment list.
	ReplaceAttachments(ctx context.Context, patientID string, attachments []model.FileRef) error
}
