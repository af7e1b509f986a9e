package mocks

import (
	"context"
	"time"

	"vetapi/internal/model"
	"vetapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id string) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByNaturalKey(ctx context.Context, identifier string) (*model.Patient, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) NaturalKeyTaken(ctx context.Context, petID, registrationNumber, excludeID string) (bool, error) {
	args := m.Called(ctx, petID, registrationNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientRepository) ListByClient(ctx context.Context, clientID string) ([]model.Patient, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPatientRepository) AppendHistory(ctx context.Context, patientID string, list repository.HistoryList, childID string) error {
	args := m.Called(ctx, patientID, list, childID)
	return args.Error(0)
}

func (m *MockPatientRepository) RemoveHistory(ctx context.Context, patientID string, list repository.HistoryList, childID string) error {
	args := m.Called(ctx, patientID, list, childID)
	return args.Error(0)
}

func (m *MockPatientRepository) SetAppointments(ctx context.Context, patientID string, last, next *time.Time) error {
	args := m.Called(ctx, patientID, last, next)
	return args.Error(0)
}

func (m *MockPatientRepository) ReplaceAttachments(ctx context.Context, patientID string, attachments []model.FileRef) error {
	args := m.Called(ctx, patientID, attachments)
	return args.Error(0)
}
