package department

import (
	"context"
	"database/sql"

	"timetrack/internal/project"
	"timetrack/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	AttachProjects(ctx context.Context, dept *Department, projects []project.Project) error
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(scope.Company(companyID)).
		Preload("Projects").
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Preload("Projects").
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Omit("Projects").Save(dept).Error
}

// AttachProjects is additive and idempotent: gorm's association append
// skips pairs already present in the join table.
func (r *repository) AttachProjects(ctx context.Context, dept *Department, projects []project.Project) error {
	return r.db.WithContext(ctx).Model(dept).Association("Projects").Append(projects)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}
