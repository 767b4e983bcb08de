package administrator

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=administrator_repo.go -destination=mock/administrator_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, inv *Invitation) error
	FindAll(ctx context.Context) ([]Invitation, error)
	FindByCode(ctx context.Context, code string) (*Invitation, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
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

func (r *repository) Create(ctx context.Context, inv *Invitation) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Invitation, error) {
	var invitations []Invitation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Invitation, error) {
	var inv Invitation
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&inv).Error
	return &inv, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Invitation{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Invitation{}, "id = ?", id).Error
}
