package project

import (
	"context"
	"database/sql"

	"timetrack/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Scopes(scope.Company(companyID)).
		Order("name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id).Error
}
