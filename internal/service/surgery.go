package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// SurgeryService defines the use cases for surgeries, mirroring each
// surgery's id into the patient's surgery_history list.
type SurgeryService interface {
	Create(ctx context.Context, sg *model.Surgery) (*model.Surgery, error)
	Get(ctx context.Context, id string) (*model.Surgery, error)
	List(ctx context.Context) ([]model.Surgery, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.Surgery, error)
	Update(ctx context.Context, id string, sg *model.Surgery) (*model.Surgery, error)
	Delete(ctx context.Context, id string) error
}

type surgeryService struct {
	surgeries repository.SurgeryRepository
	patients  repository.PatientRepository
}

// NewSurgeryService constructs a new SurgeryService.
func NewSurgeryService(surgeries repository.SurgeryRepository, patients repository.PatientRepository) SurgeryService {
	return &surgeryService{surgeries: surgeries, patients: patients}
}

func (s *surgeryService) Create(ctx context.Context, sg *model.Surgery) (*model.Surgery, error) {
	if err := validateSurgery(sg); err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, sg.Patient); err != nil {
		if isNoRows(err) {
			return nil, notFound("patient")
		}
		return nil, err
	}

	sg.ID = uuid.New().String()
	stored, err := s.surgeries.Create(ctx, sg)
	if err != nil {
		return nil, err
	}
	if err := s.patients.AppendHistory(ctx, stored.Patient, repository.SurgeryHistory, stored.ID); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *surgeryService) Get(ctx context.Context, id string) (*model.Surgery, error) {
	sg, err := s.surgeries.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("surgery")
		}
		return nil, err
	}
	return sg, nil
}

func (s *surgeryService) List(ctx context.Context) ([]model.Surgery, error) {
	return s.surgeries.List(ctx)
}

func (s *surgeryService) ListByPatient(ctx context.Context, patientID string) ([]model.Surgery, error) {
	return s.surgeries.ListByPatient(ctx, patientID)
}

func (s *surgeryService) Update(ctx context.Context, id string, sg *model.Surgery) (*model.Surgery, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sg.ID = id
	sg.Patient = existing.Patient
	if err := validateSurgery(sg); err != nil {
		return nil, err
	}
	return s.surgeries.Update(ctx, sg)
}

func (s *surgeryService) Delete(ctx context.Context, id string) error {
	sg, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.surgeries.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.patients.RemoveHistory(ctx, sg.Patient, repository.SurgeryHistory, id)
	return nil
}

func validateSurgery(sg *model.Surgery) error {
	var missing []string
	if sg.Patient == "" {
		missing = append(missing, "patient")
	}
	if sg.SurgeryType == "" {
		missing = append(missing, "surgeryType")
	}
	if sg.SurgeryDate.IsZero() {
		missing = append(missing, "surgeryDate")
	}
	if sg.Veterinarian == "" {
		missing = append(missing, "veterinarian")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
