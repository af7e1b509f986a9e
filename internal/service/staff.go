package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vetapi/internal/auth"
	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// LoginResult is the response of a successful staff login.
type LoginResult struct {
	Token string       `json:"token"`
	Staff *model.Staff `json:"staff"`
}

// StaffService defines the use cases for staff accounts. Passwords are
// bcrypt-hashed before they reach the repository; the plaintext never leaves
// this layer.
type StaffService interface {
	Create(ctx context.Context, st *model.Staff, password string) (*model.Staff, error)
	Get(ctx context.Context, id string) (*model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)

	// Update re-hashes the password only when a new one is given; an empty
	// password keeps the stored hash.
	Update(ctx context.Context, id string, st *model.Staff, password string) (*model.Staff, error)

	Delete(ctx context.Context, id string) error

	// Login verifies the credentials and returns a signed session token. The
	// error is identical for an unknown user and a wrong password.
	Login(ctx context.Context, userID, password string) (*LoginResult, error)
}

type staffService struct {
	staffs repository.StaffRepository
	tokens *auth.TokenIssuer
}

// NewStaffService constructs a new StaffService.
func NewStaffService(staffs repository.StaffRepository, tokens *auth.TokenIssuer) StaffService {
	return &staffService{staffs: staffs, tokens: tokens}
}

func (s *staffService) Create(ctx context.Context, st *model.Staff, password string) (*model.Staff, error) {
	if err := validateStaff(st, password, true); err != nil {
		return nil, err
	}
	taken, err := s.staffs.UserIDTaken(ctx, st.UserID, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("userId already in use")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	st.ID = uuid.New().String()
	st.PasswordHash = hash
	st.Active = true
	if st.JoinDate.IsZero() {
		st.JoinDate = time.Now().UTC()
	}
	return s.staffs.Create(ctx, st)
}

func (s *staffService) Get(ctx context.Context, id string) (*model.Staff, error) {
	st, err := s.staffs.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("staff")
		}
		return nil, err
	}
	return st, nil
}

func (s *staffService) List(ctx context.Context) ([]model.Staff, error) {
	return s.staffs.List(ctx)
}

func (s *staffService) Update(ctx context.Context, id string, st *model.Staff, password string) (*model.Staff, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateStaff(st, password, false); err != nil {
		return nil, err
	}
	taken, err := s.staffs.UserIDTaken(ctx, st.UserID, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("userId already in use")
	}

	st.ID = id
	st.PasswordHash = existing.PasswordHash
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		st.PasswordHash = hash
	}
	if st.JoinDate.IsZero() {
		st.JoinDate = existing.JoinDate
	}
	return s.staffs.Update(ctx, st)
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.staffs.Delete(ctx, id)
}

func (s *staffService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	if userID == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	st, err := s.staffs.FindByUserID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(st.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(st.ID, st.UserID, st.FullName, st.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Staff: st}, nil
}

func validateStaff(st *model.Staff, password string, requirePassword bool) error {
	var missing []string
	if st.FullName == "" {
		missing = append(missing, "fullName")
	}
	if st.Role == "" {
		missing = append(missing, "role")
	}
	if st.Phone == "" {
		missing = append(missing, "phone")
	}
	if st.Email == "" {
		missing = append(missing, "email")
	}
	if st.UserID == "" {
		missing = append(missing, "userId")
	}
	if requirePassword && password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
