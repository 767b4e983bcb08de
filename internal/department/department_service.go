package department

import (
	"context"
	"database/sql"
	"errors"

	"timetrack/internal/company"
	companyerrors "timetrack/internal/company/errors"
	departmenterrors "timetrack/internal/department/errors"
	"timetrack/internal/project"
	"timetrack/internal/shared/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAllByCompany(ctx context.Context, companyID string) ([]DepartmentResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	companyRepo company.Repository
	projectRepo project.Repository
}

func NewService(db *sql.DB, repo Repository, companyRepo company.Repository, projectRepo project.Repository) Service {
	return &service{db: db, repo: repo, companyRepo: companyRepo, projectRepo: projectRepo}
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

func (s *service) requireDepartment(ctx context.Context, companyID, id string) (*Department, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, departmenterrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	if dept.CompanyID.String() != companyID {
		return nil, departmenterrors.ErrDepartmentNotFound
	}
	return dept, nil
}

// resolveProjects loads the requested projects and rejects any that sit
// in a different company than the department.
func (s *service) resolveProjects(ctx context.Context, companyID string, ids []string) ([]project.Project, error) {
	projects := make([]project.Project, 0, len(ids))
	for _, id := range ids {
		p, err := s.projectRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, departmenterrors.ErrProjectOutsideCompany
			}
			return nil, err
		}
		if p.CompanyID.String() != companyID {
			return nil, departmenterrors.ErrProjectOutsideCompany
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateDepartmentRequest) (DepartmentResponse, error) {
	companyUUID, err := s.requireCompany(ctx, companyID)
	if err != nil {
		return DepartmentResponse{}, err
	}

	projects, err := s.resolveProjects(ctx, companyID, req.ProjectIDs)
	if err != nil {
		return DepartmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:        uuid.New(),
		Name:      req.Name,
		CompanyID: companyUUID,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}

	if len(projects) > 0 {
		if err := qtx.AttachProjects(ctx, dept, projects); err != nil {
			return DepartmentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	dept.Projects = projects
	return mapToResponse(*dept), nil
}

func (s *service) GetAllByCompany(ctx context.Context, companyID string) ([]DepartmentResponse, error) {
	if _, err := s.requireCompany(ctx, companyID); err != nil {
		return nil, err
	}

	depts, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if _, err := s.requireCompany(ctx, companyID); err != nil {
		return DepartmentResponse{}, err
	}

	projects, err := s.resolveProjects(ctx, companyID, req.ProjectIDs)
	if err != nil {
		return DepartmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := s.requireDepartment(ctx, companyID, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	dept.Name = req.Name

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}

	if len(projects) > 0 {
		if err := qtx.AttachProjects(ctx, dept, projects); err != nil {
			return DepartmentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*updated), nil
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

	dept, err := s.requireDepartment(ctx, companyID, id)
	if err != nil {
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return departmenterrors.DepartmentInUse(dept.Name)
		}
		return err
	}

	return tx.Commit()
}

func mapToResponse(dept Department) DepartmentResponse {
	projectIDs := make([]string, len(dept.Projects))
	for i, p := range dept.Projects {
		projectIDs[i] = p.ID.String()
	}
	return DepartmentResponse{
		ID:        dept.ID.String(),
		CompanyID: dept.CompanyID.String(),
		Name:      dept.Name,
		Projects:  projectIDs,
	}
}
