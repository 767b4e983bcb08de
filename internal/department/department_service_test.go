package department

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"timetrack/internal/company"
	companyerrors "timetrack/internal/company/errors"
	departmenterrors "timetrack/internal/department/errors"
	"timetrack/internal/project"
	"timetrack/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, dept *Department) error
	findByIDFn       func(ctx context.Context, id string) (*Department, error)
	updateFn         func(ctx context.Context, dept *Department) error
	attachProjectsFn func(ctx context.Context, dept *Department, projects []project.Project) error
	deleteFn         func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, dept *Department) error {
	return f.createFn(ctx, dept)
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]Department, error) {
	return nil, nil
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Department, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, dept *Department) error {
	return f.updateFn(ctx, dept)
}
func (f *fakeRepo) AttachProjects(ctx context.Context, dept *Department, projects []project.Project) error {
	return f.attachProjectsFn(ctx, dept, projects)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeCompanyRepo struct {
	findByIDFn func(ctx context.Context, id string) (*company.Company, error)
}

func (f *fakeCompanyRepo) WithTx(tx *sql.Tx) company.Repository { return f }
func (f *fakeCompanyRepo) Create(ctx context.Context, c *company.Company) error {
	return nil
}
func (f *fakeCompanyRepo) FindAll(ctx context.Context) ([]company.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) FindByID(ctx context.Context, id string) (*company.Company, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeCompanyRepo) Update(ctx context.Context, c *company.Company) error { return nil }
func (f *fakeCompanyRepo) Delete(ctx context.Context, id string) error          { return nil }

type fakeProjectRepo struct {
	findByIDFn func(ctx context.Context, id string) (*project.Project, error)
}

func (f *fakeProjectRepo) WithTx(tx *sql.Tx) project.Repository { return f }
func (f *fakeProjectRepo) Create(ctx context.Context, p *project.Project) error {
	return nil
}
func (f *fakeProjectRepo) FindAllByCompany(ctx context.Context, companyID string) ([]project.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepo) FindByID(ctx context.Context, id string) (*project.Project, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error          { return nil }

func existingCompany(id uuid.UUID) *fakeCompanyRepo {
	return &fakeCompanyRepo{
		findByIDFn: func(ctx context.Context, cid string) (*company.Company, error) {
			return &company.Company{ID: id, Name: "Initech"}, nil
		},
	}
}

func TestService_Create_AttachesProjects(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	projectID := uuid.New()

	projects := &fakeProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*project.Project, error) {
			return &project.Project{ID: projectID, Name: "billing", CompanyID: companyID}, nil
		},
	}

	var attached []project.Project
	repo := &fakeRepo{
		createFn: func(ctx context.Context, dept *Department) error { return nil },
		attachProjectsFn: func(ctx context.Context, dept *Department, ps []project.Project) error {
			attached = ps
			return nil
		},
	}

	svc := NewService(db, repo, existingCompany(companyID), projects)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), companyID.String(), CreateDepartmentRequest{
		Name:       "Platform",
		ProjectIDs: []string{projectID.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, "Platform", resp.Name)
	assert.Equal(t, []string{projectID.String()}, resp.Projects)
	require.Len(t, attached, 1)
	assert.Equal(t, projectID, attached[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_RejectsForeignCompanyProject(t *testing.T) {
	companyID := uuid.New()

	projects := &fakeProjectRepo{
		findByIDFn: func(ctx context.Context, id string) (*project.Project, error) {
			return &project.Project{ID: uuid.New(), CompanyID: uuid.New()}, nil
		},
	}
	svc := NewService(nil, &fakeRepo{}, existingCompany(companyID), projects)

	_, err := svc.Create(context.Background(), companyID.String(), CreateDepartmentRequest{
		Name:       "Platform",
		ProjectIDs: []string{uuid.New().String()},
	})
	assert.ErrorIs(t, err, departmenterrors.ErrProjectOutsideCompany)
}

func TestService_Create_UnknownCompany(t *testing.T) {
	companies := &fakeCompanyRepo{
		findByIDFn: func(ctx context.Context, id string) (*company.Company, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(nil, &fakeRepo{}, companies, &fakeProjectRepo{})

	_, err := svc.Create(context.Background(), uuid.New().String(), CreateDepartmentRequest{Name: "Platform"})
	assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
}

func TestService_Update_CrossCompanyDepartmentHidden(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Department, error) {
			return &Department{ID: uuid.New(), CompanyID: uuid.New()}, nil
		},
	}
	svc := NewService(db, repo, existingCompany(companyID), &fakeProjectRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Update(context.Background(), companyID.String(), uuid.New().String(), UpdateDepartmentRequest{Name: "Platform"})
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_BlockedByReferences(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Department, error) {
			return &Department{ID: uuid.New(), Name: "Platform", CompanyID: companyID}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			return &pgconn.PgError{Code: "23503"}
		},
	}
	svc := NewService(db, repo, existingCompany(companyID), &fakeProjectRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), companyID.String(), uuid.New().String())

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Contains(t, appErr.Message, "Platform")
	assert.NoError(t, mock.ExpectationsWereMet())
}
