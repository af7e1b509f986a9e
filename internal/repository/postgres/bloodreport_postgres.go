package postgres

import (
	"context"
	"database/sql"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const bloodReportColumns = `id, patient, veterinarian, sample_collected_date, sample_tested_date,
	hematology, clinical_chemistry, notes, created_at, updated_at`

// BloodReportPostgres is a PostgreSQL implementation of repository.BloodReportRepository.
type BloodReportPostgres struct {
	db *sql.DB
}

// NewBloodReportPostgres creates a new BloodReportPostgres repository.
func NewBloodReportPostgres(db *sql.DB) *BloodReportPostgres {
	return &BloodReportPostgres{db: db}
}

var _ repository.BloodReportRepository = (*BloodReportPostgres)(nil)

func scanBloodReport(row rowScanner) (*model.BloodReport, error) {
	var (
		b          model.BloodReport
		hematology []byte
		chemistry  []byte
	)
	if err := row.Scan(
		&b.ID,
		&b.Patient,
		&b.Veterinarian,
		&b.SampleCollectedDate,
		&b.SampleTestedDate,
		&hematology,
		&chemistry,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(hematology) > 0 {
		b.Hematology = &model.Hematology{}
		if err := scanJSON(hematology, b.Hematology); err != nil {
			return nil, err
		}
	}
	if len(chemistry) > 0 {
		b.ClinicalChemistry = &model.ClinicalChemistry{}
		if err := scanJSON(chemistry, b.ClinicalChemistry); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

// Create inserts a new blood report row and returns the stored record.
func (r *BloodReportPostgres) Create(ctx context.Context, b *model.BloodReport) (*model.BloodReport, error) {
	const q = `
		INSERT INTO blood_reports (id, patient, veterinarian, sample_collected_date, sample_tested_date,
			hematology, clinical_chemistry, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bloodReportColumns
	hematology, err := jsonObject(ptrOrNil(b.Hematology))
	if err != nil {
		return nil, err
	}
	chemistry, err := jsonObject(ptrOrNil(b.ClinicalChemistry))
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Patient,
		b.Veterinarian,
		b.SampleCollectedDate,
		b.SampleTestedDate,
		hematology,
		chemistry,
		b.Notes,
	)
	return scanBloodReport(row)
}

// FindByID fetches a single blood report by its ID.
func (r *BloodReportPostgres) FindByID(ctx context.Context, id string) (*model.BloodReport, error) {
	const q = `SELECT ` + bloodReportColumns + ` FROM blood_reports WHERE id = $1`
	return scanBloodReport(r.db.QueryRowContext(ctx, q, id))
}

// List returns all blood reports, newest first.
func (r *BloodReportPostgres) List(ctx context.Context) ([]model.BloodReport, error) {
	const q = `SELECT ` + bloodReportColumns + ` FROM blood_reports ORDER BY created_at DESC, id DESC`
	return r.queryReports(ctx, q)
}

// ListByPatient returns the reports of one patient, newest first.
func (r *BloodReportPostgres) ListByPatient(ctx context.Context, patientID string) ([]model.BloodReport, error) {
	const q = `SELECT ` + bloodReportColumns + ` FROM blood_reports WHERE patient = $1 ORDER BY created_at DESC, id DESC`
	return r.queryReports(ctx, q, patientID)
}

func (r *BloodReportPostgres) queryReports(ctx context.Context, q string, args ...any) ([]model.BloodReport, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BloodReport, 0)
	for rows.Next() {
		b, err := scanBloodReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the mutable fields of the report. The patient reference is
// not written here.
func (r *BloodReportPostgres) Update(ctx context.Context, b *model.BloodReport) (*model.BloodReport, error) {
	const q = `
		UPDATE blood_reports
		SET veterinarian = $2, sample_collected_date = $3, sample_tested_date = $4,
		    hematology = $5, clinical_chemistry = $6, notes = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + bloodReportColumns
	hematology, err := jsonObject(ptrOrNil(b.Hematology))
	if err != nil {
		return nil, err
	}
	chemistry, err := jsonObject(ptrOrNil(b.ClinicalChemistry))
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Veterinarian,
		b.SampleCollectedDate,
		b.SampleTestedDate,
		hematology,
		chemistry,
		b.Notes,
	)
	return scanBloodReport(row)
}

// Delete removes a blood report by ID. It does not return an error if the row
// does not exist.
func (r *BloodReportPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM blood_reports WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// ptrOrNil converts a typed nil pointer into an untyped nil so jsonObject
// stores SQL NULL instead of the JSON string "null".
func ptrOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}
