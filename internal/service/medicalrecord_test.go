package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"vetapi/internal/model"
	repoMocks "vetapi/internal/repository/mocks"
	"vetapi/internal/storage"
	storeMocks "vetapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMedicalRecordServiceForTest() (MedicalRecordService, *repoMocks.MockMedicalRecordRepository, *repoMocks.MockPatientRepository, *storeMocks.MockStorage) {
	records := new(repoMocks.MockMedicalRecordRepository)
	patients := new(repoMocks.MockPatientRepository)
	store := new(storeMocks.MockStorage)
	return NewMedicalRecordService(records, patients, store), records, patients, store
}

func validRecordInput() model.MedicalRecord {
	return model.MedicalRecord{
		Veterinarian: "Dr. Shrestha",
		Weight:       12.5,
		PulseRate:    "90",
		Conclusion:   "Stable",
		Diagnosis:    []string{"Gastritis"},
	}
}

func TestMedicalRecordService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves by natural key and commits transactionally", func(t *testing.T) {
		svc, records, patients, _ := newMedicalRecordServiceForTest()

		patients.On("FindByID", ctx, "PET-001").Return(nil, sql.ErrNoRows)
		patients.On("FindByNaturalKey", ctx, "PET-001").Return(&model.Patient{ID: "patient-1"}, nil)
		records.On("CreateWithHistory", ctx, mock.MatchedBy(func(rec *model.MedicalRecord) bool {
			return rec.Patient == "patient-1" && rec.ID != "" && !rec.Date.IsZero()
		}), mock.Anything, mock.Anything).Return(&model.MedicalRecord{ID: "record-1", Patient: "patient-1"}, nil)

		stored, err := svc.Create(ctx, MedicalRecordInput{Identifier: "PET-001", Record: validRecordInput()})

		assert.NoError(t, err)
		assert.Equal(t, "record-1", stored.ID)
		records.AssertExpectations(t)
	})

	t.Run("petId that fails the uuid cast still resolves the patient", func(t *testing.T) {
		svc, records, patients, _ := newMedicalRecordServiceForTest()

		patients.On("FindByID", ctx, "PET-001").Return(nil, uuidCastError("PET-001"))
		patients.On("FindByNaturalKey", ctx, "PET-001").Return(&model.Patient{ID: "patient-1"}, nil)
		records.On("CreateWithHistory", ctx, mock.MatchedBy(func(rec *model.MedicalRecord) bool {
			return rec.Patient == "patient-1"
		}), mock.Anything, mock.Anything).Return(&model.MedicalRecord{ID: "record-1", Patient: "patient-1"}, nil)

		stored, err := svc.Create(ctx, MedicalRecordInput{Identifier: "PET-001", Record: validRecordInput()})

		assert.NoError(t, err)
		assert.Equal(t, "record-1", stored.ID)
		records.AssertExpectations(t)
	})

	t.Run("unknown patient is NotFound", func(t *testing.T) {
		svc, records, patients, _ := newMedicalRecordServiceForTest()

		patients.On("FindByID", ctx, "ghost").Return(nil, sql.ErrNoRows)
		patients.On("FindByNaturalKey", ctx, "ghost").Return(nil, sql.ErrNoRows)

		stored, err := svc.Create(ctx, MedicalRecordInput{Identifier: "ghost", Record: validRecordInput()})

		assert.Nil(t, stored)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
		records.AssertNotCalled(t, "CreateWithHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing diagnosis names the field and removes uploaded files", func(t *testing.T) {
		svc, records, patients, store := newMedicalRecordServiceForTest()

		patients.On("FindByID", ctx, "patient-1").Return(&model.Patient{ID: "patient-1"}, nil)
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
			}, nil)
		store.On("Delete", ctx, mock.Anything).Return(nil)

		in := validRecordInput()
		in.Diagnosis = nil
		stored, err := svc.Create(ctx, MedicalRecordInput{
			Identifier: "patient-1",
			Record:     in,
			Files: map[string][]FileUpload{
				model.FileTypeConsentForms: {
					{FileName: "consent.pdf", ContentType: "application/pdf", Size: 4, Reader: strings.NewReader("data")},
				},
			},
		})

		assert.Nil(t, stored)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "diagnosis")
		records.AssertNotCalled(t, "CreateWithHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		patients.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		store.AssertCalled(t, "Delete", ctx, mock.Anything)
	})

	t.Run("failed insert deletes the uploaded files", func(t *testing.T) {
		svc, records, patients, store := newMedicalRecordServiceForTest()

		patients.On("FindByID", ctx, "patient-1").Return(&model.Patient{ID: "patient-1"}, nil)
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key}
			}, nil)
		store.On("Delete", ctx, mock.Anything).Return(nil)
		records.On("CreateWithHistory", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("db down"))

		stored, err := svc.Create(ctx, MedicalRecordInput{
			Identifier: "patient-1",
			Record:     validRecordInput(),
			Files: map[string][]FileUpload{
				model.FileTypeMedicalReports: {
					{FileName: "report.pdf", ContentType: "application/pdf", Size: 4, Reader: strings.NewReader("data")},
				},
			},
		})

		assert.Nil(t, stored)
		assert.Error(t, err)
		store.AssertCalled(t, "Delete", ctx, mock.Anything)
	})
}

func TestMedicalRecordService_Append(t *testing.T) {
	ctx := context.Background()
	svc, records, patients, _ := newMedicalRecordServiceForTest()

	patients.On("FindByID", ctx, "patient-1").Return(&model.Patient{ID: "patient-1"}, nil)
	stored := &model.MedicalRecord{ID: "record-1", Patient: "patient-1", Date: time.Now()}
	records.On("Create", ctx, mock.Anything).Return(stored, nil)
	patients.On("AppendHistory", ctx, "patient-1", mock.Anything, "record-1").Return(nil)
	patients.On("SetAppointments", ctx, "patient-1", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.Append(ctx, MedicalRecordInput{Identifier: "patient-1", Record: validRecordInput()})

	assert.NoError(t, err)
	assert.Equal(t, "record-1", out.ID)
	records.AssertNotCalled(t, "CreateWithHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	patients.AssertExpectations(t)
}

func TestMedicalRecordService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, records, patients, store := newMedicalRecordServiceForTest()

	records.On("FindByID", ctx, "record-1").Return(&model.MedicalRecord{
		ID:      "record-1",
		Patient: "patient-1",
		MedicalReportFiles: []model.FileRef{
			{ID: "f1", StoragePath: "medical-records/record-1/report.pdf"},
		},
	}, nil)
	records.On("Delete", ctx, "record-1").Return(nil)
	patients.On("RemoveHistory", ctx, "patient-1", mock.Anything, "record-1").Return(nil)
	store.On("Delete", ctx, "medical-records/record-1/report.pdf").Return(nil)

	err := svc.Delete(ctx, "record-1")

	assert.NoError(t, err)
	records.AssertExpectations(t)
	patients.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestMedicalRecordService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	svc, records, _, _ := newMedicalRecordServiceForTest()

	records.On("FindByID", ctx, "record-1").Return(&model.MedicalRecord{ID: "record-1", TreatmentCompleted: false}, nil)
	records.On("SetTreatmentCompleted", ctx, "record-1", true).Return(nil)

	rec, err := svc.ToggleStatus(ctx, "record-1")

	assert.NoError(t, err)
	assert.True(t, rec.TreatmentCompleted)
	records.AssertExpectations(t)
}
