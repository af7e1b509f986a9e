package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const surgeryColumns = `id, patient, surgery_type, surgery_date, veterinarian, anesthesia_type,
	duration, complications, notes, follow_up_date, medications, created_at, updated_at`

// SurgeryPostgres is a PostgreSQL implementation of repository.SurgeryRepository.
type SurgeryPostgres struct {
	db *sql.DB
}

// NewSurgeryPostgres creates a new SurgeryPostgres repository.
func NewSurgeryPostgres(db *sql.DB) *SurgeryPostgres {
	return &SurgeryPostgres{db: db}
}

var _ repository.SurgeryRepository = (*SurgeryPostgres)(nil)

func scanSurgery(row rowScanner) (*model.Surgery, error) {
	var (
		s           model.Surgery
		followUp    sql.NullTime
		medications []byte
	)
	if err := row.Scan(
		&s.ID,
		&s.Patient,
		&s.SurgeryType,
		&s.SurgeryDate,
		&s.Veterinarian,
		&s.AnesthesiaType,
		&s.Duration,
		&s.Complications,
		&s.Notes,
		&followUp,
		&medications,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if followUp.Valid {
		t := followUp.Time
		s.FollowUpDate = &t
	}
	if err := scanJSON(medications, &s.Medications); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new surgery row and returns the stored record.
func (r *SurgeryPostgres) Create(ctx context.Context, s *model.Surgery) (*model.Surgery, error) {
	const q = `
		INSERT INTO surgeries (id, patient, surgery_type, surgery_date, veterinarian, anesthesia_type,
			duration, complications, notes, follow_up_date, medications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + surgeryColumns
	medications, err := jsonArray(s.Medications)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Patient,
		s.SurgeryType,
		s.SurgeryDate,
		s.Veterinarian,
		s.AnesthesiaType,
		s.Duration,
		s.Complications,
		s.Notes,
		nullTime(s.FollowUpDate),
		medications,
	)
	return scanSurgery(row)
}

// FindByID fetches a single surgery by its ID.
func (r *SurgeryPostgres) FindByID(ctx context.Context, id string) (*model.Surgery, error) {
	const q = `SELECT ` + surgeryColumns + ` FROM surgeries WHERE id = $1`
	return scanSurgery(r.db.QueryRowContext(ctx, q, id))
}

// List returns all surgeries, newest first.
func (r *SurgeryPostgres) List(ctx context.Context) ([]model.Surgery, error) {
	const q = `SELECT ` + surgeryColumns + ` FROM surgeries ORDER BY surgery_date DESC, id DESC`
	return r.querySurgeries(ctx, q)
}

// ListByPatient returns the surgeries of one patient, newest first.
func (r *SurgeryPostgres) ListByPatient(ctx context.Context, patientID string) ([]model.Surgery, error) {
	const q = `SELECT ` + surgeryColumns + ` FROM surgeries WHERE patient = $1 ORDER BY surgery_date DESC, id DESC`
	return r.querySurgeries(ctx, q, patientID)
}

func (r *SurgeryPostgres) querySurgeries(ctx context.Context, q string, args ...any) ([]model.Surgery, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Surgery, 0)
	for rows.Next() {
		s, err := scanSurgery(rows)
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

// Update persists the mutable fields of the surgery. The patient reference is
// not written here.
func (r *SurgeryPostgres) Update(ctx context.Context, s *model.Surgery) (*model.Surgery, error) {
	const q = `
		UPDATE surgeries
		SET surgery_type = $2, surgery_date = $3, veterinarian = $4, anesthesia_type = $5,
		    duration = $6, complications = $7, notes = $8, follow_up_date = $9, medications = $10,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + surgeryColumns
	medications, err := jsonArray(s.Medications)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.SurgeryType,
		s.SurgeryDate,
		s.Veterinarian,
		s.AnesthesiaType,
		s.Duration,
		s.Complications,
		s.Notes,
		nullTime(s.FollowUpDate),
		medications,
	)
	return scanSurgery(row)
}

// Delete removes a surgery by ID. It does not return an error if the row does
// not exist.
func (r *SurgeryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM surgeries WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
