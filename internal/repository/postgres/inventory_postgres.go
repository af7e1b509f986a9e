package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const inventoryColumns = `id, name, type, unit_name, location, quantity, price, cost_price, selling_price,
	manufacturer, supplier, batch_number, expiry_date, threshold, description, created_at, updated_at`

// InventoryPostgres is a PostgreSQL implementation of repository.InventoryRepository.
type InventoryPostgres struct {
	db *sql.DB
}

// NewInventoryPostgres creates a new InventoryPostgres repository.
func NewInventoryPostgres(db *sql.DB) *InventoryPostgres {
	return &InventoryPostgres{db: db}
}

var _ repository.InventoryRepository = (*InventoryPostgres)(nil)

func scanInventoryItem(row rowScanner) (*model.InventoryItem, error) {
	var (
		item   model.InventoryItem
		expiry sql.NullTime
	)
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Type,
		&item.UnitName,
		&item.Location,
		&item.Quantity,
		&item.Price,
		&item.CostPrice,
		&item.SellingPrice,
		&item.Manufacturer,
		&item.Supplier,
		&item.BatchNumber,
		&expiry,
		&item.Threshold,
		&item.Description,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if expiry.Valid {
		t := expiry.Time
		item.ExpiryDate = &t
	}
	return &item, nil
}

// Create inserts a new inventory item row and returns the stored record.
func (r *InventoryPostgres) Create(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	const q = `
		INSERT INTO inventory_items (id, name, type, unit_name, location, quantity, price, cost_price, selling_price,
			manufacturer, supplier, batch_number, expiry_date, threshold, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + inventoryColumns
	row := r.db.QueryRowContext(ctx, q,
		item.ID,
		item.Name,
		item.Type,
		item.UnitName,
		item.Location,
		item.Quantity,
		item.Price,
		item.CostPrice,
		item.SellingPrice,
		item.Manufacturer,
		item.Supplier,
		item.BatchNumber,
		nullTime(item.ExpiryDate),
		item.Threshold,
		item.Description,
	)
	return scanInventoryItem(row)
}

// FindByID fetches a single inventory item by its ID.
func (r *InventoryPostgres) FindByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	const q = `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	return scanInventoryItem(r.db.QueryRowContext(ctx, q, id))
}

// FindByNameAndType locates the mirror row medicines maintain in inventory.
// Of several matches the most recent wins.
func (r *InventoryPostgres) FindByNameAndType(ctx context.Context, name, itemType string) (*model.InventoryItem, error) {
	const q = `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE name = $1 AND type = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanInventoryItem(r.db.QueryRowContext(ctx, q, name, itemType))
}

// List returns all inventory items, newest first.
func (r *InventoryPostgres) List(ctx context.Context) ([]model.InventoryItem, error) {
	const q = `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the item, including its supplier reference.
func (r *InventoryPostgres) Update(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	const q = `
		UPDATE inventory_items
		SET name = $2, type = $3, unit_name = $4, location = $5, quantity = $6, price = $7,
		    cost_price = $8, selling_price = $9, manufacturer = $10, supplier = $11,
		    batch_number = $12, expiry_date = $13, threshold = $14, description = $15, updated_at = now()
		WHERE id = $1
		RETURNING ` + inventoryColumns
	row := r.db.QueryRowContext(ctx, q,
		item.ID,
		item.Name,
		item.Type,
		item.UnitName,
		item.Location,
		item.Quantity,
		item.Price,
		item.CostPrice,
		item.SellingPrice,
		item.Manufacturer,
		item.Supplier,
		item.BatchNumber,
		nullTime(item.ExpiryDate),
		item.Threshold,
		item.Description,
	)
	return scanInventoryItem(row)
}

// Delete removes an inventory item by ID. It does not return an error if the
// row does not exist.
func (r *InventoryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM inventory_items WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
