package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const clientColumns = `id, owner, address, contact, email, patients, created_at, updated_at`

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

func scanClient(row rowScanner) (*model.Client, error) {
	var (
		c        model.Client
		patients []byte
	)
	if err := row.Scan(
		&c.ID,
		&c.Owner,
		&c.Address,
		&c.Contact,
		&c.Email,
		&patients,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := scanJSON(patients, &c.Patients); err != nil {
		return nil, err
	}
	if c.Patients == nil {
		c.Patients = []string{}
	}
	return &c, nil
}

// Create inserts a new client row and returns the stored record.
func (r *ClientPostgres) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		INSERT INTO clients (id, owner, address, contact, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Owner,
		c.Address,
		c.Contact,
		c.Email,
	)
	return scanClient(row)
}

// FindByID fetches a single client by its ID.
func (r *ClientPostgres) FindByID(ctx context.Context, id string) (*model.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return scanClient(r.db.QueryRowContext(ctx, q, id))
}

// List returns all clients, newest first.
func (r *ClientPostgres) List(ctx context.Context) ([]model.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the mutable fields of the client. The patients list is not
// written here; it only changes through AppendPatient and RemovePatient.
func (r *ClientPostgres) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		UPDATE clients
		SET owner = $2, address = $3, contact = $4, email = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Owner,
		c.Address,
		c.Contact,
		c.Email,
	)
	return scanClient(row)
}

// Delete removes a client by ID. It does not return an error if the row does not exist.
func (r *ClientPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM clients WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// AppendPatient pushes the patient id onto the client's patients list.
func (r *ClientPostgres) AppendPatient(ctx context.Context, clientID, patientID string) error {
	return pushRef(ctx, r.db, "clients", "patients", clientID, patientID)
}

// RemovePatient pulls the patient id from the client's patients list.
func (r *ClientPostgres) RemovePatient(ctx context.Context, clientID, patientID string) error {
	return pullRef(ctx, r.db, "clients", "patients", clientID, patientID)
}
