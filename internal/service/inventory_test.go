package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"vetapi/internal/model"
	repoMocks "vetapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInventoryServiceForTest() (InventoryService, *repoMocks.MockInventoryRepository, *repoMocks.MockSupplierRepository) {
	items := new(repoMocks.MockInventoryRepository)
	suppliers := new(repoMocks.MockSupplierRepository)
	return NewInventoryService(items, suppliers, NewSupplierService(suppliers)), items, suppliers
}

func TestInventoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new supplier name creates exactly one supplier and pushes once", func(t *testing.T) {
		svc, items, suppliers := newInventoryServiceForTest()

		suppliers.On("FindByName", ctx, "Acme").Return(nil, sql.ErrNoRows).Once()
		suppliers.On("Create", ctx, mock.MatchedBy(func(sp *model.Supplier) bool {
			return sp.Name == "Acme"
		})).Return(&model.Supplier{ID: "supplier-1", Name: "Acme"}, nil).Once()
		items.On("Create", ctx, mock.MatchedBy(func(item *model.InventoryItem) bool {
			return item.Supplier == "supplier-1" && item.ID != ""
		})).Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-1"}, nil)
		suppliers.On("AppendSupply", ctx, "supplier-1", "item-1").Return(nil).Once()

		stored, err := svc.Create(ctx, &model.InventoryItem{
			Name:     "Syringe 5ml",
			Type:     "Consumable",
			UnitName: "pcs",
		}, &model.Supplier{Name: "Acme"})

		assert.NoError(t, err)
		assert.Equal(t, "item-1", stored.ID)
		suppliers.AssertExpectations(t)
		items.AssertExpectations(t)
	})

	t.Run("missing supplier is a validation error", func(t *testing.T) {
		svc, items, _ := newInventoryServiceForTest()

		stored, err := svc.Create(ctx, &model.InventoryItem{Name: "Syringe", Type: "Consumable", UnitName: "pcs"}, nil)

		assert.Nil(t, stored)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "supplier")
		items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInventoryService_Update_MovesSupplier(t *testing.T) {
	ctx := context.Background()

	t.Run("pulls from the old history and pushes to the new", func(t *testing.T) {
		svc, items, suppliers := newInventoryServiceForTest()

		items.On("FindByID", ctx, "item-1").Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-a"}, nil)
		items.On("Update", ctx, mock.Anything).Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-b"}, nil)
		suppliers.On("RemoveSupply", ctx, "supplier-a", "item-1").Return(nil)
		suppliers.On("AppendSupply", ctx, "supplier-b", "item-1").Return(nil)

		stored, err := svc.Update(ctx, "item-1", &model.InventoryItem{
			Name: "Syringe 5ml", Type: "Consumable", UnitName: "pcs", Supplier: "supplier-b",
		}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "supplier-b", stored.Supplier)
		suppliers.AssertExpectations(t)
	})

	t.Run("vanished old supplier is skipped silently", func(t *testing.T) {
		svc, items, suppliers := newInventoryServiceForTest()

		items.On("FindByID", ctx, "item-1").Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-a"}, nil)
		items.On("Update", ctx, mock.Anything).Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-b"}, nil)
		suppliers.On("RemoveSupply", ctx, "supplier-a", "item-1").Return(errors.New("supplier gone"))
		suppliers.On("AppendSupply", ctx, "supplier-b", "item-1").Return(nil)

		_, err := svc.Update(ctx, "item-1", &model.InventoryItem{
			Name: "Syringe 5ml", Type: "Consumable", UnitName: "pcs", Supplier: "supplier-b",
		}, nil)

		assert.NoError(t, err)
	})

	t.Run("unchanged supplier touches no history", func(t *testing.T) {
		svc, items, suppliers := newInventoryServiceForTest()

		items.On("FindByID", ctx, "item-1").Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-a"}, nil)
		items.On("Update", ctx, mock.Anything).Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-a"}, nil)

		_, err := svc.Update(ctx, "item-1", &model.InventoryItem{
			Name: "Syringe 5ml", Type: "Consumable", UnitName: "pcs", Supplier: "supplier-a",
		}, nil)

		assert.NoError(t, err)
		suppliers.AssertNotCalled(t, "RemoveSupply", mock.Anything, mock.Anything, mock.Anything)
		suppliers.AssertNotCalled(t, "AppendSupply", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestInventoryService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, items, suppliers := newInventoryServiceForTest()

	items.On("FindByID", ctx, "item-1").Return(&model.InventoryItem{ID: "item-1", Supplier: "supplier-a"}, nil)
	items.On("Delete", ctx, "item-1").Return(nil)
	suppliers.On("RemoveSupply", ctx, "supplier-a", "item-1").Return(nil)

	err := svc.Delete(ctx, "item-1")

	assert.NoError(t, err)
	suppliers.AssertExpectations(t)
}
