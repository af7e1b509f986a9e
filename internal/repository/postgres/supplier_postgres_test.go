package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func supplierRows(id, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "company", "pan", "phone", "email", "address", "supply_history", "created_at", "updated_at"}).
		AddRow(id, name, "Vet Supplies Pvt", "", "9811111111", "", "Lalitpur", []byte(`["item-1"]`), time.Now(), time.Now())
}

func TestSupplierPostgres_FindByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSupplierPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM suppliers WHERE name = ?").
			WithArgs("Vet Supplies").
			WillReturnRows(supplierRows("supplier-1", "Vet Supplies"))

		s, err := repo.FindByName(ctx, "Vet Supplies")

		assert.NoError(t, err)
		assert.NotNil(t, s)
		assert.Equal(t, []string{"item-1"}, s.SupplyHistory)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM suppliers WHERE name = ?").
			WithArgs("Nobody").
			WillReturnError(sql.ErrNoRows)

		s, err := repo.FindByName(ctx, "Nobody")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, s)
	})
}

func TestSupplierPostgres_AppendSupply(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSupplierPostgres(db)
	ctx := context.Background()

	t.Run("appends once", func(t *testing.T) {
		mock.ExpectExec(`UPDATE suppliers SET supply_history = supply_history \|\| jsonb_build_array`).
			WithArgs("supplier-1", "item-2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.AppendSupply(ctx, "supplier-1", "item-2"))
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		mock.ExpectExec(`UPDATE suppliers SET supply_history = supply_history \|\| jsonb_build_array`).
			WithArgs("supplier-1", "item-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.AppendSupply(ctx, "supplier-1", "item-1"))
	})
}

func TestSupplierPostgres_RemoveSupply(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSupplierPostgres(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE suppliers SET supply_history = supply_history - `).
		WithArgs("supplier-1", "item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.RemoveSupply(ctx, "supplier-1", "item-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
