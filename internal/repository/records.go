package repository

import (
	"context"

	"vetapi/internal/model"
)

// VaccinationRepository defines data access for vaccination records.
type VaccinationRepository interface {
	Create(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error)
	FindByID(ctx context.Context, id string) (*model.Vaccination, error)
	List(ctx context.Context) ([]model.Vaccination, error)
	// Search filters by case-insensitive patient name substring and exact
	// owner phone; empty arguments are ignored.
	Search(ctx context.Context, patientName, ownerPhone string) ([]model.Vaccination, error)
	Update(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error)
	Delete(ctx context.Context, id string) error
}

// BloodReportRepository defines data access for blood reports.
type BloodReportRepository interface {
	Create(ctx context.Context, r *model.BloodReport) (*model.BloodReport, error)
	FindByID(ctx context.Context, id string) (*model.BloodReport, error)
	List(ctx context.Context) ([]model.BloodReport, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.BloodReport, error)
	Update(ctx context.Context, r *model.BloodReport) (*model.BloodReport, error)
	Delete(ctx context.Context, id string) error
}

// SurgeryRepository defines data access for surgeries.
type SurgeryRepository interface {
	Create(ctx context.Context, s *model.Surgery) (*model.Surgery, error)
	FindByID(ctx context.Context, id string) (*model.Surgery, error)
	List(ctx context.Context) ([]model.Surgery, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.Surgery, error)
	Update(ctx context.Context, s *model.Surgery) (*model.Surgery, error)
	Delete(ctx context.Context, id string) error
}
