package service

import (
	"context"
	"database/sql"
	"testing"

	"vetapi/internal/model"
	repoMocks "vetapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSupplierService_FindOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when the name is unknown", func(t *testing.T) {
		suppliers := new(repoMocks.MockSupplierRepository)
		svc := NewSupplierService(suppliers)

		suppliers.On("FindByName", ctx, "Acme").Return(nil, sql.ErrNoRows)
		suppliers.On("Create", ctx, mock.MatchedBy(func(sp *model.Supplier) bool {
			return sp.ID != "" && sp.Name == "Acme" && sp.Phone == "1"
		})).Return(&model.Supplier{ID: "supplier-1", Name: "Acme", Phone: "1"}, nil)

		sp, err := svc.FindOrCreate(ctx, &model.Supplier{Name: "Acme", Phone: "1"})

		assert.NoError(t, err)
		assert.Equal(t, "supplier-1", sp.ID)
	})

	t.Run("losing the first-write race merges into the winner", func(t *testing.T) {
		suppliers := new(repoMocks.MockSupplierRepository)
		svc := NewSupplierService(suppliers)

		winner := &model.Supplier{ID: "supplier-1", Name: "Acme", Phone: "1"}
		suppliers.On("FindByName", ctx, "Acme").Return(nil, sql.ErrNoRows).Once()
		suppliers.On("Create", ctx, mock.Anything).Return(nil, uniqueViolation("suppliers_name_key"))
		suppliers.On("FindByName", ctx, "Acme").Return(winner, nil).Once()

		sp, err := svc.FindOrCreate(ctx, &model.Supplier{Name: "Acme", Phone: "1"})

		assert.NoError(t, err)
		assert.Equal(t, "supplier-1", sp.ID)
		suppliers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		suppliers.AssertExpectations(t)
	})

	t.Run("repeated call yields one supplier, attributes merged", func(t *testing.T) {
		suppliers := new(repoMocks.MockSupplierRepository)
		svc := NewSupplierService(suppliers)

		existing := &model.Supplier{ID: "supplier-1", Name: "Acme", Phone: "1"}
		suppliers.On("FindByName", ctx, "Acme").Return(existing, nil)

		sp, err := svc.FindOrCreate(ctx, &model.Supplier{Name: "Acme", Phone: "1"})

		assert.NoError(t, err)
		assert.Equal(t, "supplier-1", sp.ID)
		assert.Equal(t, "1", sp.Phone)
		suppliers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		suppliers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("omitted attributes never clear stored ones", func(t *testing.T) {
		suppliers := new(repoMocks.MockSupplierRepository)
		svc := NewSupplierService(suppliers)

		existing := &model.Supplier{ID: "supplier-1", Name: "Acme", Phone: "1", Address: "Patan"}
		suppliers.On("FindByName", ctx, "Acme").Return(existing, nil)
		suppliers.On("Update", ctx, mock.MatchedBy(func(sp *model.Supplier) bool {
			return sp.Phone == "1" && sp.Address == "Patan" && sp.Email == "acme@example.com"
		})).Return(&model.Supplier{ID: "supplier-1", Name: "Acme", Phone: "1", Address: "Patan", Email: "acme@example.com"}, nil)

		sp, err := svc.FindOrCreate(ctx, &model.Supplier{Name: "Acme", Email: "acme@example.com"})

		assert.NoError(t, err)
		assert.Equal(t, "Patan", sp.Address)
		suppliers.AssertExpectations(t)
	})
}

func TestSupplierService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	suppliers := new(repoMocks.MockSupplierRepository)
	svc := NewSupplierService(suppliers)

	suppliers.On("FindByName", ctx, "Acme").Return(&model.Supplier{ID: "supplier-1", Name: "Acme"}, nil)

	sp, err := svc.Create(ctx, &model.Supplier{Name: "Acme"})

	assert.Nil(t, sp)
	var conflictErr *ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	suppliers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
