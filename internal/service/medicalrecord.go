package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
	"vetapi/internal/storage"
)

// MedicalRecordInput carries a create request: the patient identifier (store
// id, petId or registrationNumber), the record fields and the uploaded files
// grouped by category.
type MedicalRecordInput struct {
	Identifier string
	Record     model.MedicalRecord
	Files      map[string][]FileUpload
}

// MedicalRecordService defines the use cases for medical records, including
// the transactional create against the patient's medical_history list.
type MedicalRecordService interface {
	// Create resolves the patient, validates the record, uploads the files
	// and then runs record insert + history push + appointment update inside
	// a single transaction. Files uploaded before a failure are deleted.
	Create(ctx context.Context, in MedicalRecordInput) (*model.MedicalRecord, error)

	// Append is the non-transactional variant of Create: the same writes run
	// sequentially, best-effort.
	Append(ctx context.Context, in MedicalRecordInput) (*model.MedicalRecord, error)

	Get(ctx context.Context, id string) (*model.MedicalRecord, error)
	List(ctx context.Context) ([]model.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.MedicalRecord, error)
	Update(ctx context.Context, id string, rec *model.MedicalRecord) (*model.MedicalRecord, error)

	// Delete removes the record, its stored files (best-effort) and its id
	// from the patient's medical_history.
	Delete(ctx context.Context, id string) error

	// AddFiles uploads files into one category of the record.
	AddFiles(ctx context.Context, id, fileType string, uploads []FileUpload) (*model.MedicalRecord, error)

	// DeleteFile removes one file descriptor and its stored object.
	DeleteFile(ctx context.Context, recordID, fileType, fileID string) error

	// OpenFile streams one stored file's content.
	OpenFile(ctx context.Context, recordID, fileType, fileID string) (io.ReadCloser, model.FileRef, error)

	// ToggleStatus flips the treatmentCompleted flag.
	ToggleStatus(ctx context.Context, id string) (*model.MedicalRecord, error)
}

type medicalRecordService struct {
	records  repository.MedicalRecordRepository
	patients repository.PatientRepository
	store    storage.Storage
}

// NewMedicalRecordService constructs a new MedicalRecordService.
func NewMedicalRecordService(
	records repository.MedicalRecordRepository,
	patients repository.PatientRepository,
	store storage.Storage,
) MedicalRecordService {
	return &medicalRecordService{records: records, patients: patients, store: store}
}

// prepare resolves the patient, uploads the incoming files and validates the
// record. On validation failure the just-uploaded objects are deleted before
// the error is returned.
func (s *medicalRecordService) prepare(ctx context.Context, in MedicalRecordInput) (*model.MedicalRecord, error) {
	patient, err := s.resolvePatient(ctx, in.Identifier)
	if err != nil {
		return nil, err
	}

	rec := in.Record
	rec.ID = uuid.New().String()
	rec.Patient = patient.ID
	if rec.Date.IsZero() {
		rec.Date = time.Now().UTC()
	}

	var uploaded []model.FileRef
	for fileType, uploads := range in.Files {
		if !model.ValidFileType(fileType) {
			removeFiles(ctx, s.store, uploaded)
			return nil, &ValidationError{Fields: []string{"fileType"}}
		}
		refs, err := uploadFiles(ctx, s.store, "medical-records/"+rec.ID, uploads)
		if err != nil {
			removeFiles(ctx, s.store, uploaded)
			return nil, err
		}
		uploaded = append(uploaded, refs...)
		switch fileType {
		case model.FileTypeConsentForms:
			rec.ConsentForms = append(rec.ConsentForms, refs...)
		case model.FileTypeMedicalReports:
			rec.MedicalReportFiles = append(rec.MedicalReportFiles, refs...)
		case model.FileTypeSurgeryReports:
			rec.SurgeryReportFiles = append(rec.SurgeryReportFiles, refs...)
		case model.FileTypeVaccinationReports:
			rec.VaccinationReportFiles = append(rec.VaccinationReportFiles, refs...)
		}
	}

	if err := validateMedicalRecord(in.Identifier, &rec); err != nil {
		removeFiles(ctx, s.store, uploaded)
		return nil, err
	}
	return &rec, nil
}

func (s *medicalRecordService) Create(ctx context.Context, in MedicalRecordInput) (*model.MedicalRecord, error) {
	rec, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	stored, err := s.records.CreateWithHistory(ctx, rec, rec.Date, rec.FollowUpDate)
	if err != nil {
		s.removeRecordFiles(ctx, rec)
		return nil, err
	}
	return stored, nil
}

func (s *medicalRecordService) Append(ctx context.Context, in MedicalRecordInput) (*model.MedicalRecord, error) {
	rec, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	stored, err := s.records.Create(ctx, rec)
	if err != nil {
		s.removeRecordFiles(ctx, rec)
		return nil, err
	}
	if err := s.patients.AppendHistory(ctx, stored.Patient, repository.MedicalHistory, stored.ID); err != nil {
		return nil, err
	}
	if err := s.patients.SetAppointments(ctx, stored.Patient, &stored.Date, stored.FollowUpDate); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *medicalRecordService) Get(ctx context.Context, id string) (*model.MedicalRecord, error) {
	rec, err := s.records.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("medical record")
		}
		return nil, err
	}
	return rec, nil
}

func (s *medicalRecordService) List(ctx context.Context) ([]model.MedicalRecord, error) {
	return s.records.List(ctx)
}

func (s *medicalRecordService) ListByPatient(ctx context.Context, patientID string) ([]model.MedicalRecord, error) {
	return s.records.ListByPatient(ctx, patientID)
}

func (s *medicalRecordService) Update(ctx context.Context, id string, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateMedicalRecord(existing.Patient, rec); err != nil {
		return nil, err
	}
	rec.ID = id
	return s.records.Update(ctx, rec)
}

func (s *medicalRecordService) Delete(ctx context.Context, id string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.patients.RemoveHistory(ctx, rec.Patient, repository.MedicalHistory, id)
	s.removeRecordFiles(ctx, rec)
	return nil
}

func (s *medicalRecordService) AddFiles(ctx context.Context, id, fileType string, uploads []FileUpload) (*model.MedicalRecord, error) {
	if !model.ValidFileType(fileType) {
		return nil, &ValidationError{Fields: []string{"fileType"}}
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	refs, err := uploadFiles(ctx, s.store, "medical-records/"+id, uploads)
	if err != nil {
		return nil, err
	}
	files := append(rec.Files(fileType), refs...)
	if err := s.records.ReplaceFiles(ctx, id, fileType, files); err != nil {
		removeFiles(ctx, s.store, refs)
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *medicalRecordService) DeleteFile(ctx context.Context, recordID, fileType, fileID string) error {
	if !model.ValidFileType(fileType) {
		return &ValidationError{Fields: []string{"fileType"}}
	}
	rec, err := s.Get(ctx, recordID)
	if err != nil {
		return err
	}
	files := rec.Files(fileType)
	ref, idx := findFileRef(files, fileID)
	if idx < 0 {
		return notFound("file")
	}
	files = append(files[:idx], files[idx+1:]...)
	if err := s.records.ReplaceFiles(ctx, recordID, fileType, files); err != nil {
		return err
	}
	removeFiles(ctx, s.store, []model.FileRef{ref})
	return nil
}

func (s *medicalRecordService) OpenFile(ctx context.Context, recordID, fileType, fileID string) (io.ReadCloser, model.FileRef, error) {
	if !model.ValidFileType(fileType) {
		return nil, model.FileRef{}, &ValidationError{Fields: []string{"fileType"}}
	}
	rec, err := s.Get(ctx, recordID)
	if err != nil {
		return nil, model.FileRef{}, err
	}
	ref, idx := findFileRef(rec.Files(fileType), fileID)
	if idx < 0 {
		return nil, model.FileRef{}, notFound("file")
	}
	rc, _, err := s.store.Get(ctx, ref.StoragePath)
	if err != nil {
		return nil, model.FileRef{}, err
	}
	return rc, ref, nil
}

func (s *medicalRecordService) ToggleStatus(ctx context.Context, id string) (*model.MedicalRecord, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.records.SetTreatmentCompleted(ctx, id, !rec.TreatmentCompleted); err != nil {
		return nil, err
	}
	rec.TreatmentCompleted = !rec.TreatmentCompleted
	return rec, nil
}

func (s *medicalRecordService) resolvePatient(ctx context.Context, identifier string) (*model.Patient, error) {
	if identifier == "" {
		return nil, notFound("patient")
	}
	p, err := s.patients.FindByID(ctx, identifier)
	if err == nil {
		return p, nil
	}
	if !isNoRows(err) {
		return nil, err
	}
	p, err = s.patients.FindByNaturalKey(ctx, identifier)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("patient")
		}
		return nil, err
	}
	return p, nil
}

func (s *medicalRecordService) removeRecordFiles(ctx context.Context, rec *model.MedicalRecord) {
	removeFiles(ctx, s.store, rec.ConsentForms)
	removeFiles(ctx, s.store, rec.MedicalReportFiles)
	removeFiles(ctx, s.store, rec.SurgeryReportFiles)
	removeFiles(ctx, s.store, rec.VaccinationReportFiles)
}

// validateMedicalRecord reports every missing required field at once.
func validateMedicalRecord(identifier string, rec *model.MedicalRecord) error {
	var missing []string
	if identifier == "" {
		missing = append(missing, "petId")
	}
	if rec.Veterinarian == "" {
		missing = append(missing, "veterinarian")
	}
	if rec.Weight <= 0 {
		missing = append(missing, "weight")
	}
	if rec.PulseRate == "" {
		missing = append(missing, "pulseRate")
	}
	if rec.Conclusion == "" {
		missing = append(missing, "conclusion")
	}
	if len(rec.Diagnosis) == 0 {
		missing = append(missing, "diagnosis")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
