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

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()
	clients := new(repoMocks.MockClientRepository)
	svc := NewClientService(clients, nil, nil)

	t.Run("happy path", func(t *testing.T) {
		clients.On("Create", ctx, mock.MatchedBy(func(c *model.Client) bool {
			return c.ID != "" && c.Owner == "Ram Sharma"
		})).Return(&model.Client{ID: "client-1", Owner: "Ram Sharma"}, nil)

		stored, err := svc.Create(ctx, &model.Client{Owner: "Ram Sharma", Address: "Kathmandu", Contact: "9800000000"})

		assert.NoError(t, err)
		assert.Equal(t, "client-1", stored.ID)
	})

	t.Run("aggregates missing fields", func(t *testing.T) {
		stored, err := svc.Create(ctx, &model.Client{})

		assert.Nil(t, stored)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.ElementsMatch(t, []string{"owner", "address", "contact"}, ve.Fields)
	})
}

// Deleting a client takes every patient with it, and every patient takes its
// medical records and stored files with it.
func TestClientService_Delete_Cascades(t *testing.T) {
	ctx := context.Background()

	clients := new(repoMocks.MockClientRepository)
	patients := new(repoMocks.MockPatientRepository)
	records := new(repoMocks.MockMedicalRecordRepository)
	store := new(storeMocks.MockStorage)

	patientSvc := NewPatientService(patients, clients, records, store)
	svc := NewClientService(clients, patients, patientSvc)

	clients.On("FindByID", ctx, "client-1").Return(&model.Client{ID: "client-1", Patients: []string{"p1", "p2"}}, nil)
	patients.On("ListByClient", ctx, "client-1").Return([]model.Patient{
		{ID: "p1", Client: "client-1"},
		{ID: "p2", Client: "client-1"},
	}, nil)

	for _, id := range []string{"p1", "p2"} {
		patients.On("FindByID", ctx, id).Return(&model.Patient{ID: id, Client: "client-1"}, nil)
		clients.On("RemovePatient", ctx, "client-1", id).Return(nil)
		records.On("ListByPatient", ctx, id).Return([]model.MedicalRecord{}, nil)
		records.On("DeleteByPatient", ctx, id).Return(nil)
		patients.On("Delete", ctx, id).Return(nil)
	}
	clients.On("Delete", ctx, "client-1").Return(nil)

	err := svc.Delete(ctx, "client-1")

	assert.NoError(t, err)
	clients.AssertExpectations(t)
	patients.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestClientService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	clients := new(repoMocks.MockClientRepository)
	svc := NewClientService(clients, nil, nil)

	clients.On("FindByID", ctx, "ghost").Return(nil, sql.ErrNoRows)

	err := svc.Delete(ctx, "ghost")

	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}
