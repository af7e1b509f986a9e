package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const saleColumns = `id, date, client_name, client_phone, items, payment_method, tax_rate,
	discount, subtotal, tax, total_amount, service_charge, total_bill, notes, created_at, updated_at`

// SalePostgres is a PostgreSQL implementation of repository.SaleRepository.
type SalePostgres struct {
	db *sql.DB
}

// NewSalePostgres creates a new SalePostgres repository.
func NewSalePostgres(db *sql.DB) *SalePostgres {
	return &SalePostgres{db: db}
}

var _ repository.SaleRepository = (*SalePostgres)(nil)

func scanSale(row rowScanner) (*model.Sale, error) {
	var (
		s     model.Sale
		items []byte
	)
	if err := row.Scan(
		&s.ID,
		&s.Date,
		&s.ClientName,
		&s.ClientPhone,
		&items,
		&s.PaymentMethod,
		&s.TaxRate,
		&s.Discount,
		&s.Subtotal,
		&s.Tax,
		&s.TotalAmount,
		&s.ServiceCharge,
		&s.TotalBill,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := scanJSON(items, &s.Items); err != nil {
		return nil, err
	}
	if s.Items == nil {
		s.Items = []model.SaleItem{}
	}
	return &s, nil
}

// Create inserts a new sale row and returns the stored record.
func (r *SalePostgres) Create(ctx context.Context, s *model.Sale) (*model.Sale, error) {
	const q = `
		INSERT INTO sales (id, date, client_name, client_phone, items, payment_method, tax_rate,
			discount, subtotal, tax, total_amount, service_charge, total_bill, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + saleColumns
	items, err := jsonArray(s.Items)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Date,
		s.ClientName,
		s.ClientPhone,
		items,
		s.PaymentMethod,
		s.TaxRate,
		s.Discount,
		s.Subtotal,
		s.Tax,
		s.TotalAmount,
		s.ServiceCharge,
		s.TotalBill,
		s.Notes,
	)
	return scanSale(row)
}

// FindByID fetches a single sale by its ID.
func (r *SalePostgres) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	const q = `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return scanSale(r.db.QueryRowContext(ctx, q, id))
}

// List returns all sales, newest first.
func (r *SalePostgres) List(ctx context.Context) ([]model.Sale, error) {
	const q = `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
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

// Update persists all mutable fields of the sale.
func (r *SalePostgres) Update(ctx context.Context, s *model.Sale) (*model.Sale, error) {
	const q = `
		UPDATE sales
		SET date = $2, client_name = $3, client_phone = $4, items = $5, payment_method = $6,
		    tax_rate = $7, discount = $8, subtotal = $9, tax = $10, total_amount = $11,
		    service_charge = $12, total_bill = $13, notes = $14, updated_at = now()
		WHERE id = $1
		RETURNING ` + saleColumns
	items, err := jsonArray(s.Items)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Date,
		s.ClientName,
		s.ClientPhone,
		items,
		s.PaymentMethod,
		s.TaxRate,
		s.Discount,
		s.Subtotal,
		s.Tax,
		s.TotalAmount,
		s.ServiceCharge,
		s.TotalBill,
		s.Notes,
	)
	return scanSale(row)
}

// Delete removes a sale by ID. It does not return an error if the row does
// not exist.
func (r *SalePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM sales WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
