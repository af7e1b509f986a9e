package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const supplierColumns = `id, name, company, pan, phone, email, address, supply_history, created_at, updated_at`

// SupplierPostgres is a PostgreSQL implementation of repository.SupplierRepository.
type SupplierPostgres struct {
	db *sql.DB
}

// NewSupplierPostgres creates a new SupplierPostgres repository.
func NewSupplierPostgres(db *sql.DB) *SupplierPostgres {
	return &SupplierPostgres{db: db}
}

var _ repository.SupplierRepository = (*SupplierPostgres)(nil)

func scanSupplier(row rowScanner) (*model.Supplier, error) {
	var (
		s       model.Supplier
		history []byte
	)
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Company,
		&s.PAN,
		&s.Phone,
		&s.Email,
		&s.Address,
		&history,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := scanJSON(history, &s.SupplyHistory); err != nil {
		return nil, err
	}
	if s.SupplyHistory == nil {
		s.SupplyHistory = []string{}
	}
	return &s, nil
}

// Create inserts a new supplier row and returns the stored record.
func (r *SupplierPostgres) Create(ctx context.Context, s *model.Supplier) (*model.Supplier, error) {
	const q = `
		INSERT INTO suppliers (id, name, company, pan, phone, email, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + supplierColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Name,
		s.Company,
		s.PAN,
		s.Phone,
		s.Email,
		s.Address,
	)
	return scanSupplier(row)
}

// FindByID fetches a single supplier by its ID.
func (r *SupplierPostgres) FindByID(ctx context.Context, id string) (*model.Supplier, error) {
	const q = `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return scanSupplier(r.db.QueryRowContext(ctx, q, id))
}

// FindByName fetches the supplier with the exact name.
func (r *SupplierPostgres) FindByName(ctx context.Context, name string) (*model.Supplier, error) {
	const q = `SELECT ` + supplierColumns + ` FROM suppliers WHERE name = $1`
	return scanSupplier(r.db.QueryRowContext(ctx, q, name))
}

// List returns all suppliers, newest first.
func (r *SupplierPostgres) List(ctx context.Context) ([]model.Supplier, error) {
	const q = `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the mutable fields of the supplier. The supply history list
// changes only through AppendSupply and RemoveSupply.
func (r *SupplierPostgres) Update(ctx context.Context, s *model.Supplier) (*model.Supplier, error) {
	const q = `
		UPDATE suppliers
		SET name = $2, company = $3, pan = $4, phone = $5, email = $6, address = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + supplierColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Name,
		s.Company,
		s.PAN,
		s.Phone,
		s.Email,
		s.Address,
	)
	return scanSupplier(row)
}

// Delete removes a supplier by ID. It does not return an error if the row does not exist.
func (r *SupplierPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM suppliers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// AppendSupply pushes itemID onto supply_history unless already present.
func (r *SupplierPostgres) AppendSupply(ctx context.Context, supplierID, itemID string) error {
	return pushRefUnique(ctx, r.db, "suppliers", "supply_history", supplierID, itemID)
}

// RemoveSupply pulls itemID from supply_history.
func (r *SupplierPostgres) RemoveSupply(ctx context.Context, supplierID, itemID string) error {
	return pullRef(ctx, r.db, "suppliers", "supply_history", supplierID, itemID)
}
