package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const medicineColumns = `id, name, type, unit_name, unit, cost_price, selling_price, expiry_date, supplier, created_at, updated_at`

// MedicinePostgres is a PostgreSQL implementation of repository.MedicineRepository.
type MedicinePostgres struct {
	db *sql.DB
}

// NewMedicinePostgres creates a new MedicinePostgres repository.
func NewMedicinePostgres(db *sql.DB) *MedicinePostgres {
	return &MedicinePostgres{db: db}
}

var _ repository.MedicineRepository = (*MedicinePostgres)(nil)

func scanMedicine(row rowScanner) (*model.Medicine, error) {
	var m model.Medicine
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Type,
		&m.UnitName,
		&m.Unit,
		&m.CostPrice,
		&m.SellingPrice,
		&m.ExpiryDate,
		&m.Supplier,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new medicine row and returns the stored record.
func (r *MedicinePostgres) Create(ctx context.Context, m *model.Medicine) (*model.Medicine, error) {
	const q = `
		INSERT INTO medicines (id, name, type, unit_name, unit, cost_price, selling_price, expiry_date, supplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + medicineColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.Name,
		m.Type,
		m.UnitName,
		m.Unit,
		m.CostPrice,
		m.SellingPrice,
		m.ExpiryDate,
		m.Supplier,
	)
	return scanMedicine(row)
}

// FindByID fetches a single medicine by its ID.
func (r *MedicinePostgres) FindByID(ctx context.Context, id string) (*model.Medicine, error) {
	const q = `SELECT ` + medicineColumns + ` FROM medicines WHERE id = $1`
	return scanMedicine(r.db.QueryRowContext(ctx, q, id))
}

// List returns all medicines, newest first.
func (r *MedicinePostgres) List(ctx context.Context) ([]model.Medicine, error) {
	const q = `SELECT ` + medicineColumns + ` FROM medicines ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Medicine, 0)
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists all mutable fields of the medicine.
func (r *MedicinePostgres) Update(ctx context.Context, m *model.Medicine) (*model.Medicine, error) {
	const q = `
		UPDATE medicines
		SET name = $2, type = $3, unit_name = $4, unit = $5, cost_price = $6,
		    selling_price = $7, expiry_date = $8, supplier = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + medicineColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.Name,
		m.Type,
		m.UnitName,
		m.Unit,
		m.CostPrice,
		m.SellingPrice,
		m.ExpiryDate,
		m.Supplier,
	)
	return scanMedicine(row)
}

// Delete removes a medicine by ID. It does not return an error if the row
// does not exist.
func (r *MedicinePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM medicines WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
