package user

import (
	"context"
	"database/sql"

	"timetrack/internal/domain"
	"timetrack/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllExcludingRole(ctx context.Context, role domain.Role) ([]User, error)
	FindByDepartmentAndRole(ctx context.Context, departmentID string, role domain.Role) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repository) FindAllExcludingRole(ctx context.Context, role domain.Role) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("role <> ?", role).
		Order("last_name ASC, first_name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByDepartmentAndRole(ctx context.Context, departmentID string, role domain.Role) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Scopes(scope.Department(departmentID)).
		Where("role = ?", role).
		Order("last_name ASC, first_name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}
