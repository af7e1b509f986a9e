package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"vetapi/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func clientRows(id string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner", "address", "contact", "email", "patients", "created_at", "updated_at"}).
		AddRow(id, "Ram Sharma", "Kathmandu", "9800000000", "ram@example.com", []byte(`["p1","p2"]`), time.Now(), time.Now())
}

func TestClientPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO clients").
		WithArgs("client-1", "Ram Sharma", "Kathmandu", "9800000000", "ram@example.com").
		WillReturnRows(clientRows("client-1"))

	result, err := repo.Create(ctx, &model.Client{
		ID:      "client-1",
		Owner:   "Ram Sharma",
		Address: "Kathmandu",
		Contact: "9800000000",
		Email:   "ram@example.com",
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "client-1", result.ID)
	assert.Equal(t, []string{"p1", "p2"}, result.Patients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = ?").
			WithArgs("client-1").
			WillReturnRows(clientRows("client-1"))

		c, err := repo.FindByID(ctx, "client-1")

		assert.NoError(t, err)
		assert.NotNil(t, c)
		assert.Equal(t, "client-1", c.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		c, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, c)
	})
}

func TestClientPostgres_AppendPatient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE clients SET patients = patients \|\| jsonb_build_array`).
		WithArgs("client-1", "patient-9").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.AppendPatient(ctx, "client-1", "patient-9")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_RemovePatient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	t.Run("removes the id", func(t *testing.T) {
		mock.ExpectExec(`UPDATE clients SET patients = patients - `).
			WithArgs("client-1", "patient-9").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemovePatient(ctx, "client-1", "patient-9"))
	})

	t.Run("missing client is not an error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE clients SET patients = patients - `).
			WithArgs("gone", "patient-9").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.RemovePatient(ctx, "gone", "patient-9"))
	})
}

func TestClientPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM clients WHERE id = ?").
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "client-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
