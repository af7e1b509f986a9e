package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// BloodReportService defines the use cases for blood reports. Each report
// belongs to one patient; the patient's blood_reports list carries the
// report's id and the reference never changes after creation.
type BloodReportService interface {
	Create(ctx context.Context, b *model.BloodReport) (*model.BloodReport, error)
	Get(ctx context.Context, id string) (*model.BloodReport, error)
	List(ctx context.Context) ([]model.BloodReport, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.BloodReport, error)
	Update(ctx context.Context, id string, b *model.BloodReport) (*model.BloodReport, error)
	Delete(ctx context.Context, id string) error
}

type bloodReportService struct {
	reports  repository.BloodReportRepository
	patients repository.PatientRepository
}

// NewBloodReportService constructs a new BloodReportService.
func NewBloodReportService(reports repository.BloodReportRepository, patients repository.PatientRepository) BloodReportService {
	return &bloodReportService{reports: reports, patients: patients}
}

func (s *bloodReportService) Create(ctx context.Context, b *model.BloodReport) (*model.BloodReport, error) {
	if err := validateBloodReport(b); err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, b.Patient); err != nil {
		if isNoRows(err) {
			return nil, notFound("patient")
		}
		return nil, err
	}

	b.ID = uuid.New().String()
	stored, err := s.reports.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	if err := s.patients.AppendHistory(ctx, stored.Patient, repository.BloodReportHistory, stored.ID); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *bloodReportService) Get(ctx context.Context, id string) (*model.BloodReport, error) {
	b, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("blood report")
		}
		return nil, err
	}
	return b, nil
}

func (s *bloodReportService) List(ctx context.Context) ([]model.BloodReport, error) {
	return s.reports.List(ctx)
}

func (s *bloodReportService) ListByPatient(ctx context.Context, patientID string) ([]model.BloodReport, error) {
	return s.reports.ListByPatient(ctx, patientID)
}

func (s *bloodReportService) Update(ctx context.Context, id string, b *model.BloodReport) (*model.BloodReport, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// The patient reference is immutable after creation.
	b.ID = id
	b.Patient = existing.Patient
	if err := validateBloodReport(b); err != nil {
		return nil, err
	}
	return s.reports.Update(ctx, b)
}

func (s *bloodReportService) Delete(ctx context.Context, id string) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.patients.RemoveHistory(ctx, b.Patient, repository.BloodReportHistory, id)
	return nil
}

func validateBloodReport(b *model.BloodReport) error {
	var missing []string
	if b.Patient == "" {
		missing = append(missing, "patient")
	}
	if b.Veterinarian == "" {
		missing = append(missing, "veterinarian")
	}
	if b.SampleCollectedDate.IsZero() {
		missing = append(missing, "sampleCollectedDate")
	}
	if b.SampleTestedDate.IsZero() {
		missing = append(missing, "sampleTestedDate")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
