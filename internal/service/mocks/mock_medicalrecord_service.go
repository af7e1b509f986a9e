package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

type MockMedicalRecordService struct {
	mock.Mock
}

func (m *MockMedicalRecordService) Create(ctx context.Context, in service.MedicalRecordInput) (*model.MedicalRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordService) Append(ctx context.Context, in service.MedicalRecordInput) (*model.MedicalRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordService) Get(ctx context.Context, id string) (*model.MedicalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordService) List(ctx context.Context) ([]model.MedicalRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordService) ListByPatient(ctx context.Context, patientID string) ([]model.MedicalRecord, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordService) Update(ctx context.Context, id string, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	args := m.Called(ctx, id, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicalRecordService) AddFiles(ctx context.Context, id, fileType string, uploads []service.FileUpload) (*model.MedicalRecord, error) {
	args := m.Called(ctx, id, fileType, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordService) DeleteFile(ctx context.Context, recordID, fileType, fileID string) error {
	args := m.Called(ctx, recordID, fileType, fileID)
	return args.Error(0)
}

func (m *MockMedicalRecordService) OpenFile(ctx context.Context, recordID, fileType, fileID string) (io.ReadCloser, model.FileRef, error) {
	args := m.Called(ctx, recordID, fileType, fileID)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(model.FileRef), args.Error(2)
}

func (m *MockMedicalRecordService) ToggleStatus(ctx context.Context, id string) (*model.MedicalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MedicalRecord), args.Error(1)
}
