package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// SupplierService defines the use cases for suppliers. FindOrCreate is the
// natural-key upsert the inventory and medicine flows build on.
type SupplierService interface {
	Create(ctx context.Context, sp *model.Supplier) (*model.Supplier, error)
	Get(ctx context.Context, id string) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, id string, sp *model.Supplier) (*model.Supplier, error)
	Delete(ctx context.Context, id string) error

	// FindOrCreate looks the supplier up by exact name, creating it when
	// absent. When found, non-empty incoming attributes are merged over the
	// stored ones; omission never clears a field. Safe to repeat.
	FindOrCreate(ctx context.Context, sp *model.Supplier) (*model.Supplier, error)
}

type supplierService struct {
	suppliers repository.SupplierRepository
}

// NewSupplierService constructs a new SupplierService.
func NewSupplierService(suppliers repository.SupplierRepository) SupplierService {
	return &supplierService{suppliers: suppliers}
}

func (s *supplierService) Create(ctx context.Context, sp *model.Supplier) (*model.Supplier, error) {
	if sp.Name == "" {
		return nil, &ValidationError{Fields: []string{"name"}}
	}
	if _, err := s.suppliers.FindByName(ctx, sp.Name); err == nil {
		return nil, conflict("supplier name already in use")
	} else if !isNoRows(err) {
		return nil, err
	}
	sp.ID = uuid.New().String()
	return s.suppliers.Create(ctx, sp)
}

func (s *supplierService) Get(ctx context.Context, id string) (*model.Supplier, error) {
	sp, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("supplier")
		}
		return nil, err
	}
	return sp, nil
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *supplierService) Update(ctx context.Context, id string, sp *model.Supplier) (*model.Supplier, error) {
	if sp.Name == "" {
		return nil, &ValidationError{Fields: []string{"name"}}
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if existing, err := s.suppliers.FindByName(ctx, sp.Name); err == nil && existing.ID != id {
		return nil, conflict("supplier name already in use")
	} else if err != nil && !isNoRows(err) {
		return nil, err
	}
	sp.ID = id
	return s.suppliers.Update(ctx, sp)
}

func (s *supplierService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.suppliers.Delete(ctx, id)
}

func (s *supplierService) FindOrCreate(ctx context.Context, sp *model.Supplier) (*model.Supplier, error) {
	if sp.Name == "" {
		return nil, &ValidationError{Fields: []string{"supplier.name"}}
	}
	existing, err := s.suppliers.FindByName(ctx, sp.Name)
	if err != nil {
		if !isNoRows(err) {
			return nil, err
		}
		sp.ID = uuid.New().String()
		created, err := s.suppliers.Create(ctx, sp)
		if err == nil {
			return created, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
		// Lost a concurrent first-write race on the unique name; the
		// winner's row is the one to merge into.
		existing, err = s.suppliers.FindByName(ctx, sp.Name)
		if err != nil {
			return nil, err
		}
	}

	changed := false
	merge := func(dst *string, src string) {
		if src != "" && src != *dst {
			*dst = src
			changed = true
		}
	}
	merge(&existing.Company, sp.Company)
	merge(&existing.PAN, sp.PAN)
	merge(&existing.Phone, sp.Phone)
	merge(&existing.Email, sp.Email)
	merge(&existing.Address, sp.Address)
	if !changed {
		return existing, nil
	}
	return s.suppliers.Update(ctx, existing)
}
