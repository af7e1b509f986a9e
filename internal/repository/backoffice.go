package repository

import (
	"context"

	"vetapi/internal/model"
)

// MedicineRepository defines data access for the medicine catalogue.
type MedicineRepository interface {
	Create(ctx context.Context, m *model.Medicine) (*model.Medicine, error)
	FindByID(ctx context.Context, id string) (*model.Medicine, error)
	List(ctx context.Context) ([]model.Medicine, error)
	Update(ctx context.Context, m *model.Medicine) (*model.Medicine, error)
	Delete(ctx context.Context, id string) error
}

// SaleRepository defines data access for sales.
type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) (*model.Sale, error)
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	Update(ctx context.Context, s *model.Sale) (*model.Sale, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository defines data access for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error)
	FindByID(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	Update(ctx context.Context, a *model.Appointment) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// StaffRepository defines data access for staff accounts.
type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) (*model.Staff, error)
	FindByID(ctx context.Context, id string) (*model.Staff, error)
	// FindByUserID looks a staff member up by login name.
	FindByUserID(ctx context.Context, userID string) (*model.Staff, error)
	// UserIDTaken reports whether any staff other than excludeID holds userID.
	UserIDTaken(ctx context.Context, userID, excludeID string) (bool, error)
	List(ctx context.Context) ([]model.Staff, error)
	Update(ctx context.Context, s *model.Staff) (*model.Staff, error)
	Delete(ctx context.Context, id string) error
}
