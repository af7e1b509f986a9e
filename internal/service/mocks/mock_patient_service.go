package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) Get(ctx context.Context, id string) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) GetByIdentifier(ctx context.Context, identifier string) (*model.Patient, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) List(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientService) ListByClient(ctx context.Context, clientID string) ([]model.Patient, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientService) Update(ctx context.Context, id string, p *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPatientService) UploadAttachments(ctx context.Context, patientID string, uploads []service.FileUpload) (*model.Patient, error) {
	args := m.Called(ctx, patientID, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) DeleteAttachment(ctx context.Context, patientID, attachmentID string) error {
	args := m.Called(ctx, patientID, attachmentID)
	return args.Error(0)
}

func (m *MockPatientService) OpenAttachment(ctx context.Context, patientID, attachmentID string) (io.ReadCloser, model.FileRef, error) {
	args := m.Called(ctx, patientID, attachmentID)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(model.FileRef), args.Error(2)
}
