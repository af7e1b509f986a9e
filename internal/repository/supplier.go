package repository

import (
	"context"

	"vetapi/internal/model"
)

// SupplierRepository defines data access for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) (*model.Supplier, error)

	FindByID(ctx context.Context, id string) (*model.Supplier, error)

	// FindByName returns the supplier with the exact name, the natural key
	// used by the find-or-create flow.
	FindByName(ctx context.Context, name string) (*model.Supplier, error)

	List(ctx context.Context) ([]model.Supplier, error)

	Update(ctx context.Context, s *model.Supplier) (*model.Supplier, error)

	Delete(ctx context.Context, id string) error

	// AppendSupply pushes itemID onto supply_history unless already present.
	AppendSupply(ctx context.Context, supplierID, itemID string) error

	// RemoveSupply pulls itemID from supply_history.
	RemoveSupply(ctx context.Context, supplierID, itemID string) error
}

// InventoryRepository defines data access for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error)

	FindByID(ctx context.Context, id string) (*model.InventoryItem, error)

	// FindByNameAndType locates the mirror row medicines maintain in
	// inventory.
	FindByNameAndType(ctx context.Context, name, itemType string) (*model.InventoryItem, error)

	List(ctx context.Context) ([]model.InventoryItem, error)

	Update(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error)

	Delete(ctx context.Context, id string) error
}
