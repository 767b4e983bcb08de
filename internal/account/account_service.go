package account

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	accounterrors "timetrack/internal/account/errors"
	"timetrack/internal/administrator"
	"timetrack/internal/domain"
	"timetrack/internal/shared/pgerr"
	"timetrack/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
}

type service struct {
	db          *sql.DB
	users       user.Repository
	invitations administrator.Repository
}

func NewService(db *sql.DB, users user.Repository, invitations administrator.Repository) Service {
	return &service{db: db, users: users, invitations: invitations}
}

// Login answers an unknown email and a wrong password identically so
// registered addresses are not enumerable.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, accounterrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, accounterrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return LoginResponse{}, accounterrors.ErrAccountDisabled
	}

	token, err := s.signToken(u)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token:    token,
		Redirect: u.Role.LandingPath(),
	}, nil
}

// Register consumes the invitation: the account is created and the
// invitation deleted in one transaction, so a code works exactly once.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if req.Password != req.PasswordConfirm {
		return RegisterResponse{}, accounterrors.ErrPasswordMismatch
	}

	inv, err := s.invitations.FindByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RegisterResponse{}, accounterrors.ErrInvalidAccessCode
		}
		return RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	role := inv.Role
	if !role.Valid() {
		role = domain.RoleEmployee
	}

	deptID := inv.DepartmentID
	u := &user.User{
		ID:           uuid.New(),
		FirstName:    inv.FirstName,
		LastName:     inv.LastName,
		Email:        inv.Email,
		PasswordHash: string(hashed),
		Role:         role,
		Post:         inv.Post,
		DepartmentID: &deptID,
		IsActive:     true,
	}

	usersTx := s.users.WithTx(tx)
	if err := usersTx.Create(ctx, u); err != nil {
		if pgerr.IsUniqueViolation(err, "") {
			return RegisterResponse{}, accounterrors.ErrEmailAlreadyRegistered
		}
		return RegisterResponse{}, err
	}

	invitationsTx := s.invitations.WithTx(tx)
	if err := invitationsTx.Delete(ctx, inv.ID.String()); err != nil {
		return RegisterResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RegisterResponse{}, err
	}

	return RegisterResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Redirect: "/accounts/login",
	}, nil
}

func (s *service) signToken(u *user.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    int(u.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	if u.DepartmentID != nil {
		claims["department_id"] = u.DepartmentID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
