package postgres

import (
	"context"
	"database/sql"
	"time"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const patientColumns = `id, name, species, breed, age, sex, pet_id, registration_number, client,
	last_appointment, next_appointment,
	medical_history, vaccination_history, blood_reports, surgery_history, attachments,
	created_at, updated_at`

// PatientPostgres is a PostgreSQL implementation of repository.PatientRepository.
type PatientPostgres struct {
	db *sql.DB
}

// NewPatientPostgres creates a new PatientPostgres repository.
func NewPatientPostgres(db *sql.DB) *PatientPostgres {
	return &PatientPostgres{db: db}
}

var _ repository.PatientRepository = (*PatientPostgres)(nil)

func scanPatient(row rowScanner) (*model.Patient, error) {
	var (
		p           model.Patient
		last, next  sql.NullTime
		medical     []byte
		vaccination []byte
		blood       []byte
		surgery     []byte
		attachments []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.Sex,
		&p.PetID,
		&p.RegistrationNumber,
		&p.Client,
		&last,
		&next,
		&medical,
		&vaccination,
		&blood,
		&surgery,
		&attachments,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if last.Valid {
		t := last.Time
		p.LastAppointment = &t
	}
	if next.Valid {
		t := next.Time
		p.NextAppointment = &t
	}
	for _, pair := range []struct {
		data []byte
		dst  *[]string
	}{
		{medical, &p.MedicalHistory},
		{vaccination, &p.VaccinationHistory},
		{blood, &p.BloodReports},
		{surgery, &p.SurgeryHistory},
	} {
		if err := scanJSON(pair.data, pair.dst); err != nil {
			return nil, err
		}
		if *pair.dst == nil {
			*pair.dst = []string{}
		}
	}
	if err := scanJSON(attachments, &p.Attachments); err != nil {
		return nil, err
	}
	if p.Attachments == nil {
		p.Attachments = []model.FileRef{}
	}
	return &p, nil
}

// Create inserts a new patient row and returns the stored record.
func (r *PatientPostgres) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	const q = `
		INSERT INTO patients (id, name, species, breed, age, sex, pet_id, registration_number, client, attachments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + patientColumns
	attachments, err := jsonArray(p.Attachments)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Sex,
		p.PetID,
		p.RegistrationNumber,
		p.Client,
		attachments,
	)
	return scanPatient(row)
}

// FindByID fetches a single patient by its ID.
func (r *PatientPostgres) FindByID(ctx context.Context, id string) (*model.Patient, error) {
	const q = `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	return scanPatient(r.db.QueryRowContext(ctx, q, id))
}

// FindByNaturalKey fetches the patient whose pet_id or registration_number
// equals identifier.
func (r *PatientPostgres) FindByNaturalKey(ctx context.Context, identifier string) (*model.Patient, error) {
	const q = `SELECT ` + patientColumns + ` FROM patients WHERE pet_id = $1 OR registration_number = $1 LIMIT 1`
	return scanPatient(r.db.QueryRowContext(ctx, q, identifier))
}

// NaturalKeyTaken reports whether any patient other than excludeID holds one
// of the given natural keys. Empty keys never match.
func (r *PatientPostgres) NaturalKeyTaken(ctx context.Context, petID, registrationNumber, excludeID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM patients
			WHERE ((pet_id = $1 AND $1 <> '') OR (registration_number = $2 AND $2 <> ''))
			  AND ($3 = '' OR id <> $3::uuid)
		)
	`
	var taken bool
	err := r.db.QueryRowContext(ctx, q, petID, registrationNumber, excludeID).Scan(&taken)
	return taken, err
}

// List returns all patients, newest first.
func (r *PatientPostgres) List(ctx context.Context) ([]model.Patient, error) {
	const q = `SELECT ` + patientColumns + ` FROM patients ORDER BY created_at DESC, id DESC`
	return r.queryPatients(ctx, q)
}

// ListByClient returns the patients owned by the given client.
func (r *PatientPostgres) ListByClient(ctx context.Context, clientID string) ([]model.Patient, error) {
	const q = `SELECT ` + patientColumns + ` FROM patients WHERE client = $1 ORDER BY created_at DESC, id DESC`
	return r.queryPatients(ctx, q, clientID)
}

func (r *PatientPostgres) queryPatients(ctx context.Context, q string, args ...any) ([]model.Patient, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the mutable fields of the patient. History lists and
// appointment timestamps change only through their dedicated methods.
func (r *PatientPostgres) Update(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	const q = `
		UPDATE patients
		SET name = $2, species = $3, breed = $4, age = $5, sex = $6,
		    pet_id = $7, registration_number = $8, client = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + patientColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Sex,
		p.PetID,
		p.RegistrationNumber,
		p.Client,
	)
	return scanPatient(row)
}

// Delete removes a patient by ID. It does not return an error if the row does not exist.
func (r *PatientPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM patients WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// AppendHistory pushes childID onto the named back-reference list.
func (r *PatientPostgres) AppendHistory(ctx context.Context, patientID string, list repository.HistoryList, childID string) error {
	return pushRef(ctx, r.db, "patients", string(list), patientID, childID)
}

// RemoveHistory pulls childID from the named back-reference list.
func (r *PatientPostgres) RemoveHistory(ctx context.Context, patientID string, list repository.HistoryList, childID string) error {
	return pullRef(ctx, r.db, "patients", string(list), patientID, childID)
}

// SetAppointments updates the appointment timestamps; a nil value leaves the
// stored one untouched.
func (r *PatientPostgres) SetAppointments(ctx context.Context, patientID string, last, next *time.Time) error {
	const q = `
		UPDATE patients
		SET last_appointment = COALESCE($2, last_appointment),
		    next_appointment = COALESCE($3, next_appointment),
		    updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, q, patientID, nullTime(last), nullTime(next))
	return err
}

// ReplaceAttachments overwrites the embedded attachment list.
func (r *PatientPostgres) ReplaceAttachments(ctx context.Context, patientID string, attachments []model.FileRef) error {
	const q = `UPDATE patients SET attachments = $2, updated_at = now() WHERE id = $1`
	data, err := jsonArray(attachments)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, patientID, data)
	return err
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
