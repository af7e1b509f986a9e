package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
	"vetapi/internal/storage"
)

// PatientService defines the use cases for patients, including the
// back-reference maintenance against the owning client.
type PatientService interface {
	// Create persists the patient and appends its id to the client's patients
	// list. Fails with NotFound if the client is absent and Conflict if the
	// petId or registrationNumber is already taken.
	Create(ctx context.Context, p *model.Patient) (*model.Patient, error)

	Get(ctx context.Context, id string) (*model.Patient, error)

	// GetByIdentifier resolves by store id first, then by petId or
	// registrationNumber.
	GetByIdentifier(ctx context.Context, identifier string) (*model.Patient, error)

	List(ctx context.Context) ([]model.Patient, error)
	ListByClient(ctx context.Context, clientID string) ([]model.Patient, error)

	// Update fails with Conflict if another patient holds the incoming
	// natural keys. A client change moves the id between the clients'
	// patients lists.
	Update(ctx context.Context, id string, p *model.Patient) (*model.Patient, error)

	// Delete removes the patient, pulls its id from the client's patients
	// list, deletes all of its medical records and removes the stored files
	// behind attachments and record reports.
	Delete(ctx context.Context, id string) error

	// UploadAttachments stores the files and appends their descriptors to the
	// patient's attachment list.
	UploadAttachments(ctx context.Context, patientID string, uploads []FileUpload) (*model.Patient, error)

	// DeleteAttachment removes one attachment descriptor and its stored object.
	DeleteAttachment(ctx context.Context, patientID, attachmentID string) error

	// OpenAttachment streams one attachment's content.
	OpenAttachment(ctx context.Context, patientID, attachmentID string) (io.ReadCloser, model.FileRef, error)
}

type patientService struct {
	patients repository.PatientRepository
	clients  repository.ClientRepository
	records  repository.MedicalRecordRepository
	store    storage.Storage
}

// NewPatientService constructs a new PatientService.
func NewPatientService(
	patients repository.PatientRepository,
	clients repository.ClientRepository,
	records repository.MedicalRecordRepository,
	store storage.Storage,
) PatientService {
	return &patientService{patients: patients, clients: clients, records: records, store: store}
}

func (s *patientService) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	if err := validatePatient(p); err != nil {
		return nil, err
	}
	if _, err := s.clients.FindByID(ctx, p.Client); err != nil {
		if isNoRows(err) {
			return nil, notFound("client")
		}
		return nil, err
	}
	taken, err := s.patients.NaturalKeyTaken(ctx, p.PetID, p.RegistrationNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("petId or registrationNumber already in use")
	}

	p.ID = uuid.New().String()
	stored, err := s.patients.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	// Child first, then parent: a failed push leaves a missing back-reference,
	// never a dangling one.
	if err := s.clients.AppendPatient(ctx, stored.Client, stored.ID); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *patientService) Get(ctx context.Context, id string) (*model.Patient, error) {
	p, err := s.patients.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("patient")
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) GetByIdentifier(ctx context.Context, identifier string) (*model.Patient, error) {
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

func (s *patientService) List(ctx context.Context) ([]model.Patient, error) {
	return s.patients.List(ctx)
}

func (s *patientService) ListByClient(ctx context.Context, clientID string) ([]model.Patient, error) {
	return s.patients.ListByClient(ctx, clientID)
}

func (s *patientService) Update(ctx context.Context, id string, p *model.Patient) (*model.Patient, error) {
	if err := validatePatient(p); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	taken, err := s.patients.NaturalKeyTaken(ctx, p.PetID, p.RegistrationNumber, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("petId or registrationNumber already in use")
	}

	p.ID = id
	stored, err := s.patients.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if existing.Client != stored.Client {
		// Moving between owners also moves the back-reference. The pull is
		// best-effort: the old client may already be gone.
		_ = s.clients.RemovePatient(ctx, existing.Client, id)
		if err := s.clients.AppendPatient(ctx, stored.Client, id); err != nil {
			return nil, err
		}
	}
	return stored, nil
}

func (s *patientService) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	// Detach from the parent before deleting dependents so the client never
	// points at a half-deleted patient.
	_ = s.clients.RemovePatient(ctx, p.Client, id)

	records, err := s.records.ListByPatient(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.DeleteByPatient(ctx, id); err != nil {
		return err
	}
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}

	for _, rec := range records {
		removeFiles(ctx, s.store, rec.ConsentForms)
		removeFiles(ctx, s.store, rec.MedicalReportFiles)
		removeFiles(ctx, s.store, rec.SurgeryReportFiles)
		removeFiles(ctx, s.store, rec.VaccinationReportFiles)
	}
	removeFiles(ctx, s.store, p.Attachments)
	return nil
}

func (s *patientService) UploadAttachments(ctx context.Context, patientID string, uploads []FileUpload) (*model.Patient, error) {
	p, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	refs, err := uploadFiles(ctx, s.store, "patients/"+patientID, uploads)
	if err != nil {
		return nil, err
	}
	p.Attachments = append(p.Attachments, refs...)
	if err := s.patients.ReplaceAttachments(ctx, patientID, p.Attachments); err != nil {
		removeFiles(ctx, s.store, refs)
		return nil, err
	}
	return p, nil
}

func (s *patientService) DeleteAttachment(ctx context.Context, patientID, attachmentID string) error {
	p, err := s.Get(ctx, patientID)
	if err != nil {
		return err
	}
	ref, idx := findFileRef(p.Attachments, attachmentID)
	if idx < 0 {
		return notFound("attachment")
	}
	p.Attachments = append(p.Attachments[:idx], p.Attachments[idx+1:]...)
	if err := s.patients.ReplaceAttachments(ctx, patientID, p.Attachments); err != nil {
		return err
	}
	removeFiles(ctx, s.store, []model.FileRef{ref})
	return nil
}

func (s *patientService) OpenAttachment(ctx context.Context, patientID, attachmentID string) (io.ReadCloser, model.FileRef, error) {
	p, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, model.FileRef{}, err
	}
	ref, idx := findFileRef(p.Attachments, attachmentID)
	if idx < 0 {
		return nil, model.FileRef{}, notFound("attachment")
	}
	rc, _, err := s.store.Get(ctx, ref.StoragePath)
	if err != nil {
		return nil, model.FileRef{}, err
	}
	return rc, ref, nil
}

func validatePatient(p *model.Patient) error {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Species == "" {
		missing = append(missing, "species")
	}
	if p.Age == "" {
		missing = append(missing, "age")
	}
	if p.PetID == "" {
		missing = append(missing, "petId")
	}
	if p.RegistrationNumber == "" {
		missing = append(missing, "registrationNumber")
	}
	if p.Client == "" {
		missing = append(missing, "client")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
