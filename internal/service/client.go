package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// ClientService defines the use cases for pet owners.
type ClientService interface {
	Create(ctx context.Context, c *model.Client) (*model.Client, error)
	Get(ctx context.Context, id string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, id string, c *model.Client) (*model.Client, error)

	// Delete removes the client and cascades to its patients, which in turn
	// removes their medical records and stored files.
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	clients  repository.ClientRepository
	patients repository.PatientRepository
	cascade  PatientService
}

// NewClientService constructs a new ClientService. cascade performs the
// per-patient delete so both delete paths share one code path.
func NewClientService(clients repository.ClientRepository, patients repository.PatientRepository, cascade PatientService) ClientService {
	return &clientService{clients: clients, patients: patients, cascade: cascade}
}

func (s *clientService) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	if err := validateClient(c); err != nil {
		return nil, err
	}
	c.ID = uuid.New().String()
	return s.clients.Create(ctx, c)
}

func (s *clientService) Get(ctx context.Context, id string) (*model.Client, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("client")
		}
		return nil, err
	}
	return c, nil
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) Update(ctx context.Context, id string, c *model.Client) (*model.Client, error) {
	if err := validateClient(c); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	c.ID = id
	return s.clients.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	owned, err := s.patients.ListByClient(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range owned {
		if err := s.cascade.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	return s.clients.Delete(ctx, id)
}

func validateClient(c *model.Client) error {
	var missing []string
	if c.Owner == "" {
		missing = append(missing, "owner")
	}
	if c.Address == "" {
		missing = append(missing, "address")
	}
	if c.Contact == "" {
		missing = append(missing, "contact")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
