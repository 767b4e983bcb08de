package company

import (
	"context"
	"database/sql"
	"errors"

	companyerrors "timetrack/internal/company/errors"
	"timetrack/internal/shared/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c := &Company{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := qtx.Create(ctx, c); err != nil {
		return CompanyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	c.Name = req.Name

	if err := qtx.Update(ctx, c); err != nil {
		return CompanyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return companyerrors.ErrCompanyNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return companyerrors.CompanyInUse(c.Name)
		}
		return err
	}

	return tx.Commit()
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:   c.ID.String(),
		Name: c.Name,
	}
}
