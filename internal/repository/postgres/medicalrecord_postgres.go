package postgres

import (
	"context"
	"database/sql"
	"time"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

const medicalRecordColumns = `id, patient, veterinarian, weight, pulse_rate, conclusion,
	reason, prognosis, advice, notes,
	examination, previous_history, treatment_plan, clinical_signs, diagnosis, treatment, clinical_finding,
	medications, treatment_completed, vaccination_status, clinical_examination,
	consent_forms, medical_report_files, surgery_report_files, vaccination_report_files,
	date, follow_up_date, created_at, updated_at`

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// MedicalRecordPostgres is a PostgreSQL implementation of
// repository.MedicalRecordRepository.
type MedicalRecordPostgres struct {
	db *sql.DB
}

// NewMedicalRecordPostgres creates a new MedicalRecordPostgres repository.
func NewMedicalRecordPostgres(db *sql.DB) *MedicalRecordPostgres {
	return &MedicalRecordPostgres{db: db}
}

var _ repository.MedicalRecordRepository = (*MedicalRecordPostgres)(nil)

func scanMedicalRecord(row rowScanner) (*model.MedicalRecord, error) {
	var (
		m        model.MedicalRecord
		followUp sql.NullTime

		examination, previousHistory, treatmentPlan, clinicalSigns []byte
		diagnosis, treatment, clinicalFinding, medications         []byte
		vaccinationStatus, clinicalExamination                     []byte
		consentForms, medicalReports, surgeryReports, vaccReports  []byte
	)
	if err := row.Scan(
		&m.ID,
		&m.Patient,
		&m.Veterinarian,
		&m.Weight,
		&m.PulseRate,
		&m.Conclusion,
		&m.Reason,
		&m.Prognosis,
		&m.Advice,
		&m.Notes,
		&examination,
		&previousHistory,
		&treatmentPlan,
		&clinicalSigns,
		&diagnosis,
		&treatment,
		&clinicalFinding,
		&medications,
		&m.TreatmentCompleted,
		&vaccinationStatus,
		&clinicalExamination,
		&consentForms,
		&medicalReports,
		&surgeryReports,
		&vaccReports,
		&m.Date,
		&followUp,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if followUp.Valid {
		t := followUp.Time
		m.FollowUpDate = &t
	}
	for _, pair := range []struct {
		data []byte
		dst  any
	}{
		{examination, &m.Examination},
		{previousHistory, &m.PreviousHistory},
		{treatmentPlan, &m.TreatmentPlan},
		{clinicalSigns, &m.ClinicalSigns},
		{diagnosis, &m.Diagnosis},
		{treatment, &m.Treatment},
		{clinicalFinding, &m.ClinicalFinding},
		{medications, &m.Medications},
		{consentForms, &m.ConsentForms},
		{medicalReports, &m.MedicalReportFiles},
		{surgeryReports, &m.SurgeryReportFiles},
		{vaccReports, &m.VaccinationReportFiles},
	} {
		if err := scanJSON(pair.data, pair.dst); err != nil {
			return nil, err
		}
	}
	if len(vaccinationStatus) > 0 {
		m.VaccinationStatus = &model.VaccinationStatus{}
		if err := scanJSON(vaccinationStatus, m.VaccinationStatus); err != nil {
			return nil, err
		}
	}
	if len(clinicalExamination) > 0 {
		m.ClinicalExamination = &model.ClinicalExamination{}
		if err := scanJSON(clinicalExamination, m.ClinicalExamination); err != nil {
			return nil, err
		}
	}
	if m.Diagnosis == nil {
		m.Diagnosis = []string{}
	}
	if m.ConsentForms == nil {
		m.ConsentForms = []model.FileRef{}
	}
	if m.MedicalReportFiles == nil {
		m.MedicalReportFiles = []model.FileRef{}
	}
	if m.SurgeryReportFiles == nil {
		m.SurgeryReportFiles = []model.FileRef{}
	}
	if m.VaccinationReportFiles == nil {
		m.VaccinationReportFiles = []model.FileRef{}
	}
	return &m, nil
}

func insertMedicalRecord(ctx context.Context, qr queryRower, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	const q = `
		INSERT INTO medical_records (id, patient, veterinarian, weight, pulse_rate, conclusion,
			reason, prognosis, advice, notes,
			examination, previous_history, treatment_plan, clinical_signs, diagnosis, treatment, clinical_finding,
			medications, treatment_completed, vaccination_status, clinical_examination,
			consent_forms, medical_report_files, surgery_report_files, vaccination_report_files,
			date, follow_up_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21,
			$22, $23, $24, $25, $26, $27)
		RETURNING ` + medicalRecordColumns

	lists := make([][]byte, 0, 12)
	for _, v := range []any{
		rec.Examination, rec.PreviousHistory, rec.TreatmentPlan, rec.ClinicalSigns,
		rec.Diagnosis, rec.Treatment, rec.ClinicalFinding, rec.Medications,
		rec.ConsentForms, rec.MedicalReportFiles, rec.SurgeryReportFiles, rec.VaccinationReportFiles,
	} {
		b, err := jsonArray(v)
		if err != nil {
			return nil, err
		}
		lists = append(lists, b)
	}
	var vaccinationStatus, clinicalExamination any
	var err error
	if rec.VaccinationStatus != nil {
		if vaccinationStatus, err = jsonObject(rec.VaccinationStatus); err != nil {
			return nil, err
		}
	}
	if rec.ClinicalExamination != nil {
		if clinicalExamination, err = jsonObject(rec.ClinicalExamination); err != nil {
			return nil, err
		}
	}

	row := qr.QueryRowContext(ctx, q,
		rec.ID,
		rec.Patient,
		rec.Veterinarian,
		rec.Weight,
		rec.PulseRate,
		rec.Conclusion,
		rec.Reason,
		rec.Prognosis,
		rec.Advice,
		rec.Notes,
		lists[0], lists[1], lists[2], lists[3], lists[4], lists[5], lists[6],
		lists[7],
		rec.TreatmentCompleted,
		vaccinationStatus,
		clinicalExamination,
		lists[8], lists[9], lists[10], lists[11],
		rec.Date,
		nullTime(rec.FollowUpDate),
	)
	return scanMedicalRecord(row)
}

// Create inserts the record without touching the patient document.
func (r *MedicalRecordPostgres) Create(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	return insertMedicalRecord(ctx, r.db, rec)
}

// CreateWithHistory inserts the record, pushes its id onto the patient's
// medical_history list and updates the appointment timestamps, all inside one
// SQL transaction.
func (r *MedicalRecordPostgres) CreateWithHistory(ctx context.Context, rec *model.MedicalRecord, lastAppointment time.Time, nextAppointment *time.Time) (*model.MedicalRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := insertMedicalRecord(ctx, tx, rec)
	if err != nil {
		return nil, err
	}
	if err := pushRef(ctx, tx, "patients", "medical_history", rec.Patient, out.ID); err != nil {
		return nil, err
	}
	const qAppt = `
		UPDATE patients
		SET last_appointment = $2,
		    next_appointment = COALESCE($3, next_appointment),
		    updated_at = now()
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, qAppt, rec.Patient, lastAppointment, nullTime(nextAppointment)); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single medical record by its ID.
func (r *MedicalRecordPostgres) FindByID(ctx context.Context, id string) (*model.MedicalRecord, error) {
	const q = `SELECT ` + medicalRecordColumns + ` FROM medical_records WHERE id = $1`
	return scanMedicalRecord(r.db.QueryRowContext(ctx, q, id))
}

// List returns all medical records, newest first.
func (r *MedicalRecordPostgres) List(ctx context.Context) ([]model.MedicalRecord, error) {
	const q = `SELECT ` + medicalRecordColumns + ` FROM medical_records ORDER BY date DESC, id DESC`
	return r.queryRecords(ctx, q)
}

// ListByPatient returns the records of one patient, newest first.
func (r *MedicalRecordPostgres) ListByPatient(ctx context.Context, patientID string) ([]model.MedicalRecord, error) {
	const q = `SELECT ` + medicalRecordColumns + ` FROM medical_records WHERE patient = $1 ORDER BY date DESC, id DESC`
	return r.queryRecords(ctx, q, patientID)
}

func (r *MedicalRecordPostgres) queryRecords(ctx context.Context, q string, args ...any) ([]model.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MedicalRecord, 0)
	for rows.Next() {
		m, err := scanMedicalRecord(rows)
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

// Update persists the mutable fields of the record. The patient reference and
// the embedded file lists are not written here.
func (r *MedicalRecordPostgres) Update(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	const q = `
		UPDATE medical_records
		SET veterinarian = $2, weight = $3, pulse_rate = $4, conclusion = $5,
		    reason = $6, prognosis = $7, advice = $8, notes = $9,
		    examination = $10, previous_history = $11, treatment_plan = $12, clinical_signs = $13,
		    diagnosis = $14, treatment = $15, clinical_finding = $16, medications = $17,
		    treatment_completed = $18, vaccination_status = $19, clinical_examination = $20,
		    date = $21, follow_up_date = $22, updated_at = now()
		WHERE id = $1
		RETURNING ` + medicalRecordColumns

	lists := make([][]byte, 0, 8)
	for _, v := range []any{
		rec.Examination, rec.PreviousHistory, rec.TreatmentPlan, rec.ClinicalSigns,
		rec.Diagnosis, rec.Treatment, rec.ClinicalFinding, rec.Medications,
	} {
		b, err := jsonArray(v)
		if err != nil {
			return nil, err
		}
		lists = append(lists, b)
	}
	var vaccinationStatus, clinicalExamination any
	var err error
	if rec.VaccinationStatus != nil {
		if vaccinationStatus, err = jsonObject(rec.VaccinationStatus); err != nil {
			return nil, err
		}
	}
	if rec.ClinicalExamination != nil {
		if clinicalExamination, err = jsonObject(rec.ClinicalExamination); err != nil {
			return nil, err
		}
	}

	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.Veterinarian,
		rec.Weight,
		rec.PulseRate,
		rec.Conclusion,
		rec.Reason,
		rec.Prognosis,
		rec.Advice,
		rec.Notes,
		lists[0], lists[1], lists[2], lists[3], lists[4], lists[5], lists[6], lists[7],
		rec.TreatmentCompleted,
		vaccinationStatus,
		clinicalExamination,
		rec.Date,
		nullTime(rec.FollowUpDate),
	)
	return scanMedicalRecord(row)
}

// Delete removes a medical record by ID. It does not return an error if the
// row does not exist.
func (r *MedicalRecordPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM medical_records WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// DeleteByPatient removes every record of the patient.
func (r *MedicalRecordPostgres) DeleteByPatient(ctx context.Context, patientID string) error {
	const q = `DELETE FROM medical_records WHERE patient = $1`
	_, err := r.db.ExecContext(ctx, q, patientID)
	return err
}

// ReplaceFiles overwrites one embedded file category of the record. fileType
// must be a value accepted by model.ValidFileType.
func (r *MedicalRecordPostgres) ReplaceFiles(ctx context.Context, id, fileType string, files []model.FileRef) error {
	column, ok := fileColumns[fileType]
	if !ok {
		return sql.ErrNoRows
	}
	data, err := jsonArray(files)
	if err != nil {
		return err
	}
	q := `UPDATE medical_records SET ` + column + ` = $2, updated_at = now() WHERE id = $1`
	_, err = r.db.ExecContext(ctx, q, id, data)
	return err
}

// fileColumns maps the request-facing file category names to their columns.
// Keeping the map closed prevents column-name injection from the path param.
var fileColumns = map[string]string{
	model.FileTypeConsentForms:       "consent_forms",
	model.FileTypeMedicalReports:     "medical_report_files",
	model.FileTypeSurgeryReports:     "surgery_report_files",
	model.FileTypeVaccinationReports: "vaccination_report_files",
}

// SetTreatmentCompleted stores the flag.
func (r *MedicalRecordPostgres) SetTreatmentCompleted(ctx context.Context, id string, completed bool) error {
	const q = `UPDATE medical_records SET treatment_completed = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, completed)
	return err
}
