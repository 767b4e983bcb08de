package user

import (
	"context"
	"database/sql"
	"testing"

	"timetrack/internal/domain"
	usererrors "timetrack/internal/user/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findByIDFn func(ctx context.Context, id string) (*User, error)
	updateFn   func(ctx context.Context, u *User) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository        { return f }
func (f *fakeRepo) Create(ctx context.Context, u *User) error { return nil }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) FindAllExcludingRole(ctx context.Context, role domain.Role) ([]User, error) {
	return nil, nil
}
func (f *fakeRepo) FindByDepartmentAndRole(ctx context.Context, departmentID string, role domain.Role) ([]User, error) {
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, u *User) error { return f.updateFn(ctx, u) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

func accountWithPassword(t *testing.T, password string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &User{
		ID:           uuid.New(),
		FirstName:    "Ivan",
		LastName:     "Ivanov",
		Email:        "worker@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleEmployee,
		IsActive:     true,
	}
}

func TestService_UpdateProfile(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	account := accountWithPassword(t, "swordfish123")
	var saved User
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) { return account, nil },
		updateFn:   func(ctx context.Context, u *User) error { saved = *u; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.UpdateProfile(context.Background(), account.ID.String(), UpdateProfileRequest{
		FirstName: "Pyotr",
		LastName:  "Petrov",
	})
	require.NoError(t, err)

	assert.Equal(t, "Pyotr", resp.FirstName)
	assert.Equal(t, "Petrov", saved.LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ChangePassword(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	account := accountWithPassword(t, "old-password1")
	var saved User
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) { return account, nil },
		updateFn:   func(ctx context.Context, u *User) error { saved = *u; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := svc.ChangePassword(context.Background(), account.ID.String(), ChangePasswordRequest{
		OldPassword:     "old-password1",
		Password:        "new-password1",
		PasswordConfirm: "new-password1",
	})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("new-password1")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ChangePassword_WrongOldPassword(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	account := accountWithPassword(t, "old-password1")
	updated := false
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) { return account, nil },
		updateFn:   func(ctx context.Context, u *User) error { updated = true; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.ChangePassword(context.Background(), account.ID.String(), ChangePasswordRequest{
		OldPassword:     "not-the-password",
		Password:        "new-password1",
		PasswordConfirm: "new-password1",
	})
	assert.ErrorIs(t, err, usererrors.ErrWrongOldPassword)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The confirmation pair is checked before anything is read or written.
func TestService_ChangePassword_MismatchShortCircuits(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) {
			t.Fatal("lookup must not run on mismatched passwords")
			return nil, nil
		},
	}
	svc := NewService(nil, repo)

	err := svc.ChangePassword(context.Background(), uuid.New().String(), ChangePasswordRequest{
		OldPassword:     "old-password1",
		Password:        "new-password1",
		PasswordConfirm: "different1",
	})
	assert.ErrorIs(t, err, usererrors.ErrPasswordMismatch)
}
