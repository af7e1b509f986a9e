package service

import (
	"context"
	"database/sql"
	"testing"

	"vetapi/internal/auth"
	"vetapi/internal/model"
	repoMocks "vetapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStaffServiceForTest() (StaffService, *repoMocks.MockStaffRepository) {
	staffs := new(repoMocks.MockStaffRepository)
	return NewStaffService(staffs, auth.NewTokenIssuer("test-secret", 60)), staffs
}

func validStaffInput() *model.Staff {
	return &model.Staff{
		FullName: "Sita Karki",
		Role:     "Veterinarian",
		Phone:    "9800000000",
		Email:    "sita@example.com",
		UserID:   "sita",
	}
}

func TestStaffService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hash, never the plaintext", func(t *testing.T) {
		svc, staffs := newStaffServiceForTest()

		staffs.On("UserIDTaken", ctx, "sita", "").Return(false, nil)
		staffs.On("Create", ctx, mock.MatchedBy(func(st *model.Staff) bool {
			return st.ID != "" &&
				st.Active &&
				st.PasswordHash != "" &&
				st.PasswordHash != "s3cret" &&
				auth.CheckPassword(st.PasswordHash, "s3cret")
		})).Return(&model.Staff{ID: "staff-1", UserID: "sita"}, nil)

		stored, err := svc.Create(ctx, validStaffInput(), "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, "staff-1", stored.ID)
		staffs.AssertExpectations(t)
	})

	t.Run("taken userId is Conflict", func(t *testing.T) {
		svc, staffs := newStaffServiceForTest()

		staffs.On("UserIDTaken", ctx, "sita", "").Return(true, nil)

		stored, err := svc.Create(ctx, validStaffInput(), "s3cret")

		assert.Nil(t, stored)
		var conflictErr *ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		staffs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing password is a validation error", func(t *testing.T) {
		svc, _ := newStaffServiceForTest()

		stored, err := svc.Create(ctx, validStaffInput(), "")

		assert.Nil(t, stored)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "password")
	})
}

func TestStaffService_Update_KeepsHashWhenPasswordEmpty(t *testing.T) {
	ctx := context.Background()
	svc, staffs := newStaffServiceForTest()

	hash, err := auth.HashPassword("s3cret")
	assert.NoError(t, err)

	staffs.On("FindByID", ctx, "staff-1").Return(&model.Staff{ID: "staff-1", UserID: "sita", PasswordHash: hash}, nil)
	staffs.On("UserIDTaken", ctx, "sita", "staff-1").Return(false, nil)
	staffs.On("Update", ctx, mock.MatchedBy(func(st *model.Staff) bool {
		return st.PasswordHash == hash
	})).Return(&model.Staff{ID: "staff-1", UserID: "sita"}, nil)

	_, err = svc.Update(ctx, "staff-1", validStaffInput(), "")

	assert.NoError(t, err)
	staffs.AssertExpectations(t)
}

func TestStaffService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("s3cret")
	assert.NoError(t, err)

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		svc, staffs := newStaffServiceForTest()

		staffs.On("FindByUserID", ctx, "sita").Return(&model.Staff{
			ID: "staff-1", UserID: "sita", FullName: "Sita Karki", Role: "Veterinarian", PasswordHash: hash,
		}, nil)

		res, err := svc.Login(ctx, "sita", "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, "staff-1", res.Staff.ID)

		claims, err := auth.NewTokenIssuer("test-secret", 60).Verify(res.Token)
		assert.NoError(t, err)
		assert.Equal(t, "staff-1", claims.Subject)
		assert.Equal(t, "sita", claims.UserID)
	})

	t.Run("unknown user and wrong password fail identically", func(t *testing.T) {
		svc, staffs := newStaffServiceForTest()

		staffs.On("FindByUserID", ctx, "nobody").Return(nil, sql.ErrNoRows)
		staffs.On("FindByUserID", ctx, "sita").Return(&model.Staff{
			ID: "staff-1", UserID: "sita", PasswordHash: hash,
		}, nil)

		_, errUnknown := svc.Login(ctx, "nobody", "s3cret")
		_, errWrongPass := svc.Login(ctx, "sita", "wrong")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPass)
	})

	t.Run("empty credentials are rejected before any lookup", func(t *testing.T) {
		svc, staffs := newStaffServiceForTest()

		_, err := svc.Login(ctx, "", "")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		staffs.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}
