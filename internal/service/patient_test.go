package service

import (
	"context"
	"database/sql"
	"testing"

	"vetapi/internal/model"
	repoMocks "vetapi/internal/repository/mocks"
	storeMocks "vetapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPatientServiceForTest() (PatientService, *repoMocks.MockPatientRepository, *repoMocks.MockClientRepository, *repoMocks.MockMedicalRecordRepository, *storeMocks.MockStorage) {
	patients := new(repoMocks.MockPatientRepository)
	clients := new(repoMocks.MockClientRepository)
	records := new(repoMocks.MockMedicalRecordRepository)
	store := new(storeMocks.MockStorage)
	return NewPatientService(patients, clients, records, store), patients, clients, records, store
}

func validPatientInput() *model.Patient {
	return &model.Patient{
		Name:               "Bruno",
		Species:            model.SpeciesCanine,
		Age:                "3 years",
		PetID:              "PET-001",
		RegistrationNumber: "REG-001",
		Client:             "client-1",
	}
}

func TestPatientService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the patient and pushes it onto the client", func(t *testing.T) {
		svc, patients, clients, _, _ := newPatientServiceForTest()

		clients.On("FindByID", ctx, "client-1").Return(&model.Client{ID: "client-1"}, nil)
		patients.On("NaturalKeyTaken", ctx, "PET-001", "REG-001", "").Return(false, nil)
		patients.On("Create", ctx, mock.MatchedBy(func(p *model.Patient) bool {
			return p.ID != "" && p.Client == "client-1"
		})).Return(&model.Patient{ID: "patient-1", Client: "client-1"}, nil)
		clients.On("AppendPatient", ctx, "client-1", "patient-1").Return(nil)

		stored, err := svc.Create(ctx, validPatientInput())

		assert.NoError(t, err)
		assert.Equal(t, "patient-1", stored.ID)
		patients.AssertExpectations(t)
		clients.AssertExpectations(t)
	})

	t.Run("unknown client is NotFound", func(t *testing.T) {
		svc, _, clients, _, _ := newPatientServiceForTest()

		clients.On("FindByID", ctx, "client-1").Return(nil, sql.ErrNoRows)

		stored, err := svc.Create(ctx, validPatientInput())

		assert.Nil(t, stored)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
		assert.Equal(t, "client", nf.Resource)
	})

	t.Run("malformed client reference is NotFound", func(t *testing.T) {
		svc, patients, clients, _, _ := newPatientServiceForTest()

		clients.On("FindByID", ctx, "not-a-uuid").Return(nil, uuidCastError("not-a-uuid"))

		in := validPatientInput()
		in.Client = "not-a-uuid"
		stored, err := svc.Create(ctx, in)

		assert.Nil(t, stored)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
		assert.Equal(t, "client", nf.Resource)
		patients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("taken petId is Conflict and writes nothing", func(t *testing.T) {
		svc, patients, clients, _, _ := newPatientServiceForTest()

		clients.On("FindByID", ctx, "client-1").Return(&model.Client{ID: "client-1"}, nil)
		patients.On("NaturalKeyTaken", ctx, "PET-001", "REG-001", "").Return(true, nil)

		stored, err := svc.Create(ctx, validPatientInput())

		assert.Nil(t, stored)
		var conflictErr *ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		patients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		clients.AssertNotCalled(t, "AppendPatient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing fields are aggregated", func(t *testing.T) {
		svc, _, _, _, _ := newPatientServiceForTest()

		stored, err := svc.Create(ctx, &model.Patient{Name: "Bruno"})

		assert.Nil(t, stored)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.ElementsMatch(t, []string{"species", "age", "petId", "registrationNumber", "client"}, ve.Fields)
	})
}

func TestPatientService_GetByIdentifier(t *testing.T) {
	ctx := context.Background()

	t.Run("store id wins over natural key", func(t *testing.T) {
		svc, patients, _, _, _ := newPatientServiceForTest()

		patients.On("FindByID", ctx, "patient-1").Return(&model.Patient{ID: "patient-1"}, nil)

		p, err := svc.GetByIdentifier(ctx, "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, "patient-1", p.ID)
		patients.AssertNotCalled(t, "FindByNaturalKey", mock.Anything, mock.Anything)
	})

	t.Run("petId that fails the uuid cast falls back to natural key", func(t *testing.T) {
		svc, patients, _, _, _ := newPatientServiceForTest()

		patients.On("FindByID", ctx, "PET-001").Return(nil, uuidCastError("PET-001"))
		patients.On("FindByNaturalKey", ctx, "PET-001").Return(&model.Patient{ID: "patient-1"}, nil)

		p, err := svc.GetByIdentifier(ctx, "PET-001")

		assert.NoError(t, err)
		assert.Equal(t, "patient-1", p.ID)
	})

	t.Run("falls back to petId or registrationNumber", func(t *testing.T) {
		svc, patients, _, _, _ := newPatientServiceForTest()

		patients.On("FindByID", ctx, "PET-001").Return(nil, sql.ErrNoRows)
		patients.On("FindByNaturalKey", ctx, "PET-001").Return(&model.Patient{ID: "patient-1"}, nil)

		p, err := svc.GetByIdentifier(ctx, "PET-001")

		assert.NoError(t, err)
		assert.Equal(t, "patient-1", p.ID)
	})

	t.Run("no match is NotFound", func(t *testing.T) {
		svc, patients, _, _, _ := newPatientServiceForTest()

		patients.On("FindByID", ctx, "ghost").Return(nil, sql.ErrNoRows)
		patients.On("FindByNaturalKey", ctx, "ghost").Return(nil, sql.ErrNoRows)

		p, err := svc.GetByIdentifier(ctx, "ghost")

		assert.Nil(t, p)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestPatientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to records and detaches from the client", func(t *testing.T) {
		svc, patients, clients, records, store := newPatientServiceForTest()

		patients.On("FindByID", ctx, "patient-1").Return(&model.Patient{
			ID:     "patient-1",
			Client: "client-1",
			Attachments: []model.FileRef{
				{ID: "a1", StoragePath: "patients/patient-1/a.pdf"},
			},
		}, nil)
		clients.On("RemovePatient", ctx, "client-1", "patient-1").Return(nil)
		records.On("ListByPatient", ctx, "patient-1").Return([]model.MedicalRecord{
			{ID: "rec-1", ConsentForms: []model.FileRef{{ID: "f1", StoragePath: "medical-records/rec-1/c.pdf"}}},
		}, nil)
		records.On("DeleteByPatient", ctx, "patient-1").Return(nil)
		patients.On("Delete", ctx, "patient-1").Return(nil)
		store.On("Delete", ctx, "medical-records/rec-1/c.pdf").Return(nil)
		store.On("Delete", ctx, "patients/patient-1/a.pdf").Return(nil)

		err := svc.Delete(ctx, "patient-1")

		assert.NoError(t, err)
		patients.AssertExpectations(t)
		clients.AssertExpectations(t)
		records.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("absent patient is NotFound", func(t *testing.T) {
		svc, patients, _, _, _ := newPatientServiceForTest()

		patients.On("FindByID", ctx, "ghost").Return(nil, sql.ErrNoRows)

		err := svc.Delete(ctx, "ghost")

		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestPatientService_Update_MovesClientBackReference(t *testing.T) {
	ctx := context.Background()
	svc, patients, clients, _, _ := newPatientServiceForTest()

	in := validPatientInput()
	in.Client = "client-2"

	patients.On("FindByID", ctx, "patient-1").Return(&model.Patient{ID: "patient-1", Client: "client-1"}, nil)
	patients.On("NaturalKeyTaken", ctx, "PET-001", "REG-001", "patient-1").Return(false, nil)
	patients.On("Update", ctx, mock.Anything).Return(&model.Patient{ID: "patient-1", Client: "client-2"}, nil)
	clients.On("RemovePatient", ctx, "client-1", "patient-1").Return(nil)
	clients.On("AppendPatient", ctx, "client-2", "patient-1").Return(nil)

	stored, err := svc.Update(ctx, "patient-1", in)

	assert.NoError(t, err)
	assert.Equal(t, "client-2", stored.Client)
	clients.AssertExpectations(t)
}
