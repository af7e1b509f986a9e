package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// InventoryService defines the use cases for stock items, keeping the
// item/supplier pair consistent: the item's supplier id and the supplier's
// supply_history list always move together.
type InventoryService interface {
	// Create resolves the supplier (find-or-create by name when a supplier
	// object is given), inserts the item and pushes its id onto the
	// supplier's supply_history.
	Create(ctx context.Context, item *model.InventoryItem, supplier *model.Supplier) (*model.InventoryItem, error)

	Get(ctx context.Context, id string) (*model.InventoryItem, error)
	List(ctx context.Context) ([]model.InventoryItem, error)

	// Update moves the item between supply_history lists when its supplier
	// changes. The pull from the old supplier is skipped silently when that
	// supplier no longer exists; the push is deduplicated, so repeating the
	// call changes nothing.
	Update(ctx context.Context, id string, item *model.InventoryItem, supplier *model.Supplier) (*model.InventoryItem, error)

	// Delete removes the item and pulls its id from the supplier's history.
	Delete(ctx context.Context, id string) error
}

type inventoryService struct {
	items     repository.InventoryRepository
	suppliers repository.SupplierRepository
	upsert    SupplierService
}

// NewInventoryService constructs a new InventoryService.
func NewInventoryService(items repository.InventoryRepository, suppliers repository.SupplierRepository, upsert SupplierService) InventoryService {
	return &inventoryService{items: items, suppliers: suppliers, upsert: upsert}
}

func (s *inventoryService) Create(ctx context.Context, item *model.InventoryItem, supplier *model.Supplier) (*model.InventoryItem, error) {
	if err := s.resolveSupplier(ctx, item, supplier); err != nil {
		return nil, err
	}
	if err := validateInventoryItem(item); err != nil {
		return nil, err
	}

	item.ID = uuid.New().String()
	if item.Threshold == 0 {
		item.Threshold = model.DefaultReorderThreshold
	}
	stored, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.AppendSupply(ctx, stored.Supplier, stored.ID); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *inventoryService) Get(ctx context.Context, id string) (*model.InventoryItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("inventory item")
		}
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context) ([]model.InventoryItem, error) {
	return s.items.List(ctx)
}

func (s *inventoryService) Update(ctx context.Context, id string, item *model.InventoryItem, supplier *model.Supplier) (*model.InventoryItem, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Supplier == "" {
		item.Supplier = existing.Supplier
	}
	if err := s.resolveSupplier(ctx, item, supplier); err != nil {
		return nil, err
	}
	if err := validateInventoryItem(item); err != nil {
		return nil, err
	}

	item.ID = id
	stored, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if existing.Supplier != stored.Supplier {
		// Old supplier may already be deleted; the pull is a silent no-op
		// then. The push is guarded against duplicates.
		_ = s.suppliers.RemoveSupply(ctx, existing.Supplier, id)
		if err := s.suppliers.AppendSupply(ctx, stored.Supplier, id); err != nil {
			return nil, err
		}
	}
	return stored, nil
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	if item.Supplier != "" {
		_ = s.suppliers.RemoveSupply(ctx, item.Supplier, id)
	}
	return nil
}

// resolveSupplier fills item.Supplier from the given supplier object via the
// natural-key upsert, leaving an already-set id alone when no object is given.
func (s *inventoryService) resolveSupplier(ctx context.Context, item *model.InventoryItem, supplier *model.Supplier) error {
	if supplier == nil || supplier.Name == "" {
		return nil
	}
	sp, err := s.upsert.FindOrCreate(ctx, supplier)
	if err != nil {
		return err
	}
	item.Supplier = sp.ID
	return nil
}

func validateInventoryItem(item *model.InventoryItem) error {
	var missing []string
	if item.Name == "" {
		missing = append(missing, "name")
	}
	if item.Type == "" {
		missing = append(missing, "type")
	}
	if item.UnitName == "" {
		missing = append(missing, "unitName")
	}
	if item.Supplier == "" {
		missing = append(missing, "supplier")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
