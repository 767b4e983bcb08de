package user

import (
	"context"
	"database/sql"
	"errors"

	usererrors "timetrack/internal/user/errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return MapToResponse(*u), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	u.FirstName = req.FirstName
	u.LastName = req.LastName

	if err := qtx.Update(ctx, u); err != nil {
		return UserResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	return MapToResponse(*u), nil
}

// ChangePassword verifies the old password before any write; the
// confirmation pair is checked first so a mismatch never touches the
// store.
func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	if req.Password != req.PasswordConfirm {
		return usererrors.ErrPasswordMismatch
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return usererrors.ErrWrongOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)

	if err := qtx.Update(ctx, u); err != nil {
		return err
	}

	return tx.Commit()
}
