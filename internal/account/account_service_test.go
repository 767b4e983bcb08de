package account

import (
	"context"
	"database/sql"
	"os"
	"testing"

	accounterrors "timetrack/internal/account/errors"
	"timetrack/internal/administrator"
	"timetrack/internal/domain"
	"timetrack/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*user.User, error)
	createFn      func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) user.Repository { return f }
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	return f.createFn(ctx, u)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) FindAllExcludingRole(ctx context.Context, role domain.Role) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByDepartmentAndRole(ctx context.Context, departmentID string, role domain.Role) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeInvitationRepo struct {
	findByCodeFn func(ctx context.Context, code string) (*administrator.Invitation, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeInvitationRepo) WithTx(tx *sql.Tx) administrator.Repository { return f }
func (f *fakeInvitationRepo) Create(ctx context.Context, inv *administrator.Invitation) error {
	return nil
}
func (f *fakeInvitationRepo) FindAll(ctx context.Context) ([]administrator.Invitation, error) {
	return nil, nil
}
func (f *fakeInvitationRepo) FindByCode(ctx context.Context, code string) (*administrator.Invitation, error) {
	return f.findByCodeFn(ctx, code)
}
func (f *fakeInvitationRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (f *fakeInvitationRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestService_Login_DispatchesByRole(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	cases := map[domain.Role]string{
		domain.RoleAdmin:    "/administrator/",
		domain.RoleDirector: "/director/",
		domain.RoleEmployee: "/user/",
	}

	for role, landing := range cases {
		deptID := uuid.New()
		account := &user.User{
			ID:           uuid.New(),
			Email:        "worker@example.com",
			PasswordHash: hashOf(t, "swordfish123"),
			Role:         role,
			DepartmentID: &deptID,
			IsActive:     true,
		}
		users := &fakeUserRepo{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return account, nil
			},
		}

		svc := NewService(nil, users, &fakeInvitationRepo{})
		resp, err := svc.Login(ctx, LoginRequest{Email: account.Email, Password: "swordfish123"})
		require.NoError(t, err)
		assert.Equal(t, landing, resp.Redirect, "role %s", role)

		token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, account.ID.String(), claims["user_id"])
		assert.Equal(t, float64(role), claims["role"])
		assert.Equal(t, deptID.String(), claims["department_id"])
	}
}

func TestService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	unknown := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(nil, unknown, &fakeInvitationRepo{})
	_, errUnknown := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "x"})

	wrongPass := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{PasswordHash: hashOf(t, "correct-horse"), IsActive: true}, nil
		},
	}
	svc = NewService(nil, wrongPass, &fakeInvitationRepo{})
	_, errWrong := svc.Login(ctx, LoginRequest{Email: "worker@example.com", Password: "battery-staple"})

	assert.ErrorIs(t, errUnknown, accounterrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, accounterrors.ErrInvalidCredentials)
}

func TestService_Login_DisabledAccount(t *testing.T) {
	users := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{PasswordHash: hashOf(t, "swordfish123"), IsActive: false}, nil
		},
	}
	svc := NewService(nil, users, &fakeInvitationRepo{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "x@example.com", Password: "swordfish123"})
	assert.ErrorIs(t, err, accounterrors.ErrAccountDisabled)
}

func TestService_Register_MismatchBeforeLookup(t *testing.T) {
	invitations := &fakeInvitationRepo{
		findByCodeFn: func(ctx context.Context, code string) (*administrator.Invitation, error) {
			t.Fatal("lookup must not run on invalid input")
			return nil, nil
		},
	}
	svc := NewService(nil, &fakeUserRepo{}, invitations)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Code:            "Ab3dEf78",
		Password:        "password-one",
		PasswordConfirm: "password-two",
	})
	assert.ErrorIs(t, err, accounterrors.ErrPasswordMismatch)
}

func TestService_Register_UnknownCode(t *testing.T) {
	invitations := &fakeInvitationRepo{
		findByCodeFn: func(ctx context.Context, code string) (*administrator.Invitation, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(nil, &fakeUserRepo{}, invitations)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Code:            "Ab3dEf78",
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
	})
	assert.ErrorIs(t, err, accounterrors.ErrInvalidAccessCode)
}

func TestService_Register_ConsumesInvitation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	inv := &administrator.Invitation{
		ID:           uuid.New(),
		Email:        "new@example.com",
		FirstName:    "Ivan",
		LastName:     "Ivanov",
		Code:         "Ab3dEf78",
		Role:         domain.RoleEmployee,
		Post:         "engineer",
		DepartmentID: uuid.New(),
	}

	var created user.User
	users := &fakeUserRepo{
		createFn: func(ctx context.Context, u *user.User) error {
			created = *u
			return nil
		},
	}

	var deletedID string
	invitations := &fakeInvitationRepo{
		findByCodeFn: func(ctx context.Context, code string) (*administrator.Invitation, error) {
			assert.Equal(t, inv.Code, code)
			return inv, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}

	svc := NewService(db, users, invitations)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Code:            inv.Code,
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, inv.Email, resp.Email)
	assert.Equal(t, "/accounts/login", resp.Redirect)
	assert.Equal(t, inv.ID.String(), deletedID)
	assert.Equal(t, domain.RoleEmployee, created.Role)
	assert.Equal(t, inv.Email, created.Email)
	assert.Equal(t, "engineer", created.Post)
	require.NotNil(t, created.DepartmentID)
	assert.Equal(t, inv.DepartmentID, *created.DepartmentID)
	assert.True(t, created.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
