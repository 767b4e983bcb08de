package company

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, c *Company) error
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

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Order("name ASC").Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Company{}, "id = ?", id).Error
}
