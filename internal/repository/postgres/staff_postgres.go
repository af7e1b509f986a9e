package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const staffColumns = `id, full_name, role, license_number, qualifications, phone, email, join_date,
	address, emergency_contact, notes, active, user_id, password_hash, created_at, updated_at`

// StaffPostgres is a PostgreSQL implementation of repository.StaffRepository.
type StaffPostgres struct {
	db *sql.DB
}

// NewStaffPostgres creates a new StaffPostgres repository.
func NewStaffPostgres(db *sql.DB) *StaffPostgres {
	return &StaffPostgres{db: db}
}

var _ repository.StaffRepository = (*StaffPostgres)(nil)

func scanStaff(row rowScanner) (*model.Staff, error) {
	var s model.Staff
	if err := row.Scan(
		&s.ID,
		&s.FullName,
		&s.Role,
		&s.LicenseNumber,
		&s.Qualifications,
		&s.Phone,
		&s.Email,
		&s.JoinDate,
		&s.Address,
		&s.EmergencyContact,
		&s.Notes,
		&s.Active,
		&s.UserID,
		&s.PasswordHash,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new staff row and returns the stored record.
func (r *StaffPostgres) Create(ctx context.Context, s *model.Staff) (*model.Staff, error) {
	const q = `
		INSERT INTO staffs (id, full_name, role, license_number, qualifications, phone, email, join_date,
			address, emergency_contact, notes, active, user_id, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + staffColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.FullName,
		s.Role,
		s.LicenseNumber,
		s.Qualifications,
		s.Phone,
		s.Email,
		s.JoinDate,
		s.Address,
		s.EmergencyContact,
		s.Notes,
		s.Active,
		s.UserID,
		s.PasswordHash,
	)
	return scanStaff(row)
}

// FindByID fetches a single staff member by ID.
func (r *StaffPostgres) FindByID(ctx context.Context, id string) (*model.Staff, error) {
	const q = `SELECT ` + staffColumns + ` FROM staffs WHERE id = $1`
	return scanStaff(r.db.QueryRowContext(ctx, q, id))
}

// FindByUserID fetches a staff member by login name.
func (r *StaffPostgres) FindByUserID(ctx context.Context, userID string) (*model.Staff, error) {
	const q = `SELECT ` + staffColumns + ` FROM staffs WHERE user_id = $1`
	return scanStaff(r.db.QueryRowContext(ctx, q, userID))
}

// UserIDTaken reports whether any staff other than excludeID holds userID.
func (r *StaffPostgres) UserIDTaken(ctx context.Context, userID, excludeID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM staffs
			WHERE user_id = $1 AND ($2 = '' OR id <> $2::uuid)
		)
	`
	var taken bool
	err := r.db.QueryRowContext(ctx, q, userID, excludeID).Scan(&taken)
	return taken, err
}

// List returns all staff, newest first.
func (r *StaffPostgres) List(ctx context.Context) ([]model.Staff, error) {
	const q = `SELECT ` + staffColumns + ` FROM staffs ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
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

// Update persists all mutable fields of the staff member, including the
// password hash.
func (r *StaffPostgres) Update(ctx context.Context, s *model.Staff) (*model.Staff, error) {
	const q = `
		UPDATE staffs
		SET full_name = $2, role = $3, license_number = $4, qualifications = $5, phone = $6,
		    email = $7, join_date = $8, address = $9, emergency_contact = $10, notes = $11,
		    active = $12, user_id = $13, password_hash = $14, updated_at = now()
		WHERE id = $1
		RETURNING ` + staffColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.FullName,
		s.Role,
		s.LicenseNumber,
		s.Qualifications,
		s.Phone,
		s.Email,
		s.JoinDate,
		s.Address,
		s.EmergencyContact,
		s.Notes,
		s.Active,
		s.UserID,
		s.PasswordHash,
	)
	return scanStaff(row)
}

// Delete removes a staff member by ID. It does not return an error if the row
// does not exist.
func (r *StaffPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM staffs WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
