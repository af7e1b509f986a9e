package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// AppointmentService defines the use cases for clinic bookings.
type AppointmentService interface {
	Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error)
	Get(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	Update(ctx context.Context, id string, a *model.Appointment) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type appointmentService struct {
	appointments repository.AppointmentRepository
}

// NewAppointmentService constructs a new AppointmentService.
func NewAppointmentService(appointments repository.AppointmentRepository) AppointmentService {
	return &appointmentService{appointments: appointments}
}

func (s *appointmentService) Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	if err := validateAppointment(a); err != nil {
		return nil, err
	}
	a.ID = uuid.New().String()
	if a.Priority == "" {
		a.Priority = model.PriorityNormal
	}
	return s.appointments.Create(ctx, a)
}

func (s *appointmentService) Get(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("appointment")
		}
		return nil, err
	}
	return a, nil
}

func (s *appointmentService) List(ctx context.Context) ([]model.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *appointmentService) Update(ctx context.Context, id string, a *model.Appointment) (*model.Appointment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := validateAppointment(a); err != nil {
		return nil, err
	}
	a.ID = id
	if a.Priority == "" {
		a.Priority = model.PriorityNormal
	}
	return s.appointments.Update(ctx, a)
}

func (s *appointmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}

func validateAppointment(a *model.Appointment) error {
	var missing []string
	if a.ClientName == "" {
		missing = append(missing, "clientName")
	}
	if a.PetName == "" {
		missing = append(missing, "petName")
	}
	if a.Date.IsZero() {
		missing = append(missing, "date")
	}
	if a.Reason == "" {
		missing = append(missing, "reason")
	}
	if a.ContactNumber == "" {
		missing = append(missing, "contactNumber")
	}
	if a.VetName == "" {
		missing = append(missing, "vetName")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
