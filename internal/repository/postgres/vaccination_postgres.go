package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const vaccinationColumns = `id, patient_name, patient_species, patient_breed, patient_age, patient_id,
	owner_name, owner_phone, vaccine_name, date_administered, next_due_date,
	batch_number, manufacturer, notes, status, created_at, updated_at`

// VaccinationPostgres is a PostgreSQL implementation of repository.VaccinationRepository.
type VaccinationPostgres struct {
	db *sql.DB
}

// NewVaccinationPostgres creates a new VaccinationPostgres repository.
func NewVaccinationPostgres(db *sql.DB) *VaccinationPostgres {
	return &VaccinationPostgres{db: db}
}

var _ repository.VaccinationRepository = (*VaccinationPostgres)(nil)

func scanVaccination(row rowScanner) (*model.Vaccination, error) {
	var (
		v            model.Vaccination
		administered sql.NullTime
		nextDue      sql.NullTime
	)
	if err := row.Scan(
		&v.ID,
		&v.PatientName,
		&v.PatientSpecies,
		&v.PatientBreed,
		&v.PatientAge,
		&v.PatientID,
		&v.OwnerName,
		&v.OwnerPhone,
		&v.VaccineName,
		&administered,
		&nextDue,
		&v.BatchNumber,
		&v.Manufacturer,
		&v.Notes,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if administered.Valid {
		t := administered.Time
		v.DateAdministered = &t
	}
	if nextDue.Valid {
		t := nextDue.Time
		v.NextDueDate = &t
	}
	return &v, nil
}

// Create inserts a new vaccination row and returns the stored record.
func (r *VaccinationPostgres) Create(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error) {
	const q = `
		INSERT INTO vaccinations (id, patient_name, patient_species, patient_breed, patient_age, patient_id,
			owner_name, owner_phone, vaccine_name, date_administered, next_due_date,
			batch_number, manufacturer, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + vaccinationColumns
	row := r.db.QueryRowContext(ctx, q,
		v.ID,
		v.PatientName,
		v.PatientSpecies,
		v.PatientBreed,
		v.PatientAge,
		v.PatientID,
		v.OwnerName,
		v.OwnerPhone,
		v.VaccineName,
		nullTime(v.DateAdministered),
		nullTime(v.NextDueDate),
		v.BatchNumber,
		v.Manufacturer,
		v.Notes,
		v.Status,
	)
	return scanVaccination(row)
}

// FindByID fetches a single vaccination by its ID.
func (r *VaccinationPostgres) FindByID(ctx context.Context, id string) (*model.Vaccination, error) {
	const q = `SELECT ` + vaccinationColumns + ` FROM vaccinations WHERE id = $1`
	return scanVaccination(r.db.QueryRowContext(ctx, q, id))
}

// List returns all vaccinations, newest first.
func (r *VaccinationPostgres) List(ctx context.Context) ([]model.Vaccination, error) {
	const q = `SELECT ` + vaccinationColumns + ` FROM vaccinations ORDER BY created_at DESC, id DESC`
	return r.queryVaccinations(ctx, q)
}

// Search filters by case-insensitive patient name substring and exact owner
// phone; empty arguments are ignored.
func (r *VaccinationPostgres) Search(ctx context.Context, patientName, ownerPhone string) ([]model.Vaccination, error) {
	const q = `
		SELECT ` + vaccinationColumns + `
		FROM vaccinations
		WHERE ($1 = '' OR patient_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR owner_phone = $2)
		ORDER BY created_at DESC, id DESC
	`
	return r.queryVaccinations(ctx, q, patientName, ownerPhone)
}

func (r *VaccinationPostgres) queryVaccinations(ctx context.Context, q string, args ...any) ([]model.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists all mutable fields of the vaccination.
func (r *VaccinationPostgres) Update(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error) {
	const q = `
		UPDATE vaccinations
		SET patient_name = $2, patient_species = $3, patient_breed = $4, patient_age = $5, patient_id = $6,
		    owner_name = $7, owner_phone = $8, vaccine_name = $9, date_administered = $10, next_due_date = $11,
		    batch_number = $12, manufacturer = $13, notes = $14, status = $15, updated_at = now()
		WHERE id = $1
		RETURNING ` + vaccinationColumns
	row := r.db.QueryRowContext(ctx, q,
		v.ID,
		v.PatientName,
		v.PatientSpecies,
		v.PatientBreed,
		v.PatientAge,
		v.PatientID,
		v.OwnerName,
		v.OwnerPhone,
		v.VaccineName,
		nullTime(v.DateAdministered),
		nullTime(v.NextDueDate),
		v.BatchNumber,
		v.Manufacturer,
		v.Notes,
		v.Status,
	)
	return scanVaccination(row)
}

// Delete removes a vaccination by ID. It does not return an error if the row
// does not exist.
func (r *VaccinationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM vaccinations WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
