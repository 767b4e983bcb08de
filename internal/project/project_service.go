package project

import (
	"context"
	"database/sql"
	"errors"

	"timetrack/internal/company"
	companyerrors "timetrack/internal/company/errors"
	projecterrors "timetrack/internal/project/errors"
	"timetrack/internal/shared/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateProjectRequest) (ProjectResponse, error)
	GetAllByCompany(ctx context.Context, companyID string) ([]ProjectResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	companyRepo company.Repository
}

func NewService(db *sql.DB, repo Repository, companyRepo company.Repository) Service {
	return &service{db: db, repo: repo, companyRepo: companyRepo}
}

func (s *service) requireCompany(ctx context.Context, companyID string) (uuid.UUID, error) {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, companyerrors.ErrCompanyNotFound
	}
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, companyerrors.ErrCompanyNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}

// requireProject resolves a project and hides ones outside the given
// company behind not-found.
func (s *service) requireProject(ctx context.Context, companyID, id string) (*Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrProjectNotFound
		}
		return nil, err
	}
	if p.CompanyID.String() != companyID {
		return nil, projecterrors.ErrProjectNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateProjectRequest) (ProjectResponse, error) {
	companyUUID, err := s.requireCompany(ctx, companyID)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &Project{
		ID:        uuid.New(),
		Name:      req.Name,
		CompanyID: companyUUID,
	}

	if err := qtx.Create(ctx, p); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAllByCompany(ctx context.Context, companyID string) ([]ProjectResponse, error) {
	if _, err := s.requireCompany(ctx, companyID); err != nil {
		return nil, err
	}

	projects, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	if _, err := s.requireCompany(ctx, companyID); err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := s.requireProject(ctx, companyID, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	p.Name = req.Name

	if err := qtx.Update(ctx, p); err != nil {
		return ProjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.requireCompany(ctx, companyID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := s.requireProject(ctx, companyID, id)
	if err != nil {
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return projecterrors.ProjectInUse(p.Name)
		}
		return err
	}

	return tx.Commit()
}

func mapToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID.String(),
		CompanyID: p.CompanyID.String(),
		Name:      p.Name,
	}
}
