package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const appointmentColumns = `id, client_id, client_name, pet_name, pet_type, pet_age, date, time,
	reason, contact_number, notes, vet_name, follow_up_date, priority, completed, created_at, updated_at`

// AppointmentPostgres is a PostgreSQL implementation of repository.AppointmentRepository.
type AppointmentPostgres struct {
	db *sql.DB
}

// NewAppointmentPostgres creates a new AppointmentPostgres repository.
func NewAppointmentPostgres(db *sql.DB) *AppointmentPostgres {
	return &AppointmentPostgres{db: db}
}

var _ repository.AppointmentRepository = (*AppointmentPostgres)(nil)

func scanAppointment(row rowScanner) (*model.Appointment, error) {
	var (
		a        model.Appointment
		clientID sql.NullString
		followUp sql.NullTime
	)
	if err := row.Scan(
		&a.ID,
		&clientID,
		&a.ClientName,
		&a.PetName,
		&a.PetType,
		&a.PetAge,
		&a.Date,
		&a.Time,
		&a.Reason,
		&a.ContactNumber,
		&a.Notes,
		&a.VetName,
		&followUp,
		&a.Priority,
		&a.Completed,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.ClientID = clientID.String
	if followUp.Valid {
		t := followUp.Time
		a.FollowUpDate = &t
	}
	return &a, nil
}

// Create inserts a new appointment row and returns the stored record.
func (r *AppointmentPostgres) Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	const q = `
		INSERT INTO appointments (id, client_id, client_name, pet_name, pet_type, pet_age, date, time,
			reason, contact_number, notes, vet_name, follow_up_date, priority, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + appointmentColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		nullString(a.ClientID),
		a.ClientName,
		a.PetName,
		a.PetType,
		a.PetAge,
		a.Date,
		a.Time,
		a.Reason,
		a.ContactNumber,
		a.Notes,
		a.VetName,
		nullTime(a.FollowUpDate),
		a.Priority,
		a.Completed,
	)
	return scanAppointment(row)
}

// FindByID fetches a single appointment by its ID.
func (r *AppointmentPostgres) FindByID(ctx context.Context, id string) (*model.Appointment, error) {
	const q = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	return scanAppointment(r.db.QueryRowContext(ctx, q, id))
}

// List returns all appointments, soonest first.
func (r *AppointmentPostgres) List(ctx context.Context) ([]model.Appointment, error) {
	const q = `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists all mutable fields of the appointment.
func (r *AppointmentPostgres) Update(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	const q = `
		UPDATE appointments
		SET client_id = $2, client_name = $3, pet_name = $4, pet_type = $5, pet_age = $6,
		    date = $7, time = $8, reason = $9, contact_number = $10, notes = $11, vet_name = $12,
		    follow_up_date = $13, priority = $14, completed = $15, updated_at = now()
		WHERE id = $1
		RETURNING ` + appointmentColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		nullString(a.ClientID),
		a.ClientName,
		a.PetName,
		a.PetType,
		a.PetAge,
		a.Date,
		a.Time,
		a.Reason,
		a.ContactNumber,
		a.Notes,
		a.VetName,
		nullTime(a.FollowUpDate),
		a.Priority,
		a.Completed,
	)
	return scanAppointment(row)
}

// Delete removes an appointment by ID. It does not return an error if the row
// does not exist.
func (r *AppointmentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM appointments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// nullString maps an empty id to SQL NULL so UUID columns never receive an
// empty-string cast.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
