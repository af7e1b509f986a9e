package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// VaccinationService defines the use cases for vaccination records. Status is
// derived, never taken from the request. When the record names a registered
// patient, its id is mirrored into that patient's vaccination_history;
// vaccinations can also exist on their own for animals not yet registered.
type VaccinationService interface {
	Create(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error)
	Get(ctx context.Context, id string) (*model.Vaccination, error)
	List(ctx context.Context) ([]model.Vaccination, error)
	Search(ctx context.Context, patientName, ownerPhone string) ([]model.Vaccination, error)
	Update(ctx context.Context, id string, v *model.Vaccination) (*model.Vaccination, error)
	Delete(ctx context.Context, id string) error
}

type vaccinationService struct {
	vaccinations repository.VaccinationRepository
	patients     repository.PatientRepository
}

// NewVaccinationService constructs a new VaccinationService.
func NewVaccinationService(vaccinations repository.VaccinationRepository, patients repository.PatientRepository) VaccinationService {
	return &vaccinationService{vaccinations: vaccinations, patients: patients}
}

func (s *vaccinationService) Create(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error) {
	v.ID = uuid.New().String()
	v.Status = v.DeriveStatus()
	stored, err := s.vaccinations.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	if id, ok := s.linkedPatient(ctx, stored.PatientID); ok {
		_ = s.patients.AppendHistory(ctx, id, repository.VaccinationHistory, stored.ID)
	}
	return stored, nil
}

func (s *vaccinationService) Get(ctx context.Context, id string) (*model.Vaccination, error) {
	v, err := s.vaccinations.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("vaccination")
		}
		return nil, err
	}
	return v, nil
}

func (s *vaccinationService) List(ctx context.Context) ([]model.Vaccination, error) {
	return s.vaccinations.List(ctx)
}

func (s *vaccinationService) Search(ctx context.Context, patientName, ownerPhone string) ([]model.Vaccination, error) {
	return s.vaccinations.Search(ctx, patientName, ownerPhone)
}

func (s *vaccinationService) Update(ctx context.Context, id string, v *model.Vaccination) (*model.Vaccination, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	v.ID = id
	v.Status = v.DeriveStatus()
	return s.vaccinations.Update(ctx, v)
}

func (s *vaccinationService) Delete(ctx context.Context, id string) error {
	v, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.vaccinations.Delete(ctx, id); err != nil {
		return err
	}
	if pid, ok := s.linkedPatient(ctx, v.PatientID); ok {
		_ = s.patients.RemoveHistory(ctx, pid, repository.VaccinationHistory, id)
	}
	return nil
}

// linkedPatient resolves the free-text patient reference against registered
// patients, by store id first and natural key second. The mirror is
// best-effort; an unresolvable reference is not an error.
func (s *vaccinationService) linkedPatient(ctx context.Context, identifier string) (string, bool) {
	if identifier == "" {
		return "", false
	}
	if p, err := s.patients.FindByID(ctx, identifier); err == nil {
		return p.ID, true
	}
	if p, err := s.patients.FindByNaturalKey(ctx, identifier); err == nil {
		return p.ID, true
	}
	return "", false
}
