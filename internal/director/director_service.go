package director

import (
	"context"
	"errors"
	"time"

	"timetrack/internal/calendar"
	directorerrors "timetrack/internal/director/errors"
	"timetrack/internal/domain"
	"timetrack/internal/timeentry"
	"timetrack/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=director_service.go -destination=mock/director_service_mock.go -package=mock
type Service interface {
	Employees(ctx context.Context, departmentID string) ([]user.UserResponse, error)
	EmployeeDetail(ctx context.Context, departmentID, id string) (EmployeeDetailResponse, error)
	Selection(ctx context.Context, departmentID string, req SelectionRequest) ([]ReportRow, error)
}

type service struct {
	users   user.Repository
	entries timeentry.Repository
	now     func() time.Time
}

func NewService(users user.Repository, entries timeentry.Repository) Service {
	return &service{users: users, entries: entries, now: time.Now}
}

func (s *service) Employees(ctx context.Context, departmentID string) ([]user.UserResponse, error) {
	if departmentID == "" {
		return nil, directorerrors.ErrNoDepartment
	}

	employees, err := s.users.FindByDepartmentAndRole(ctx, departmentID, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}

	res := make([]user.UserResponse, len(employees))
	for i, u := range employees {
		res[i] = user.MapToResponse(u)
	}
	return res, nil
}

// EmployeeDetail hides accounts outside the caller's department behind
// the same not-found answer as a missing id.
func (s *service) EmployeeDetail(ctx context.Context, departmentID, id string) (EmployeeDetailResponse, error) {
	u, err := s.requireDepartmentEmployee(ctx, departmentID, id)
	if err != nil {
		return EmployeeDetailResponse{}, err
	}

	from := time.Date(calendar.MinYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	entries, err := s.entries.FindByDateRange(ctx, id, from, s.now())
	if err != nil {
		return EmployeeDetailResponse{}, err
	}

	return EmployeeDetailResponse{
		Employee: user.MapToResponse(*u),
		Entries:  mapEntries(entries),
	}, nil
}

func (s *service) Selection(ctx context.Context, departmentID string, req SelectionRequest) ([]ReportRow, error) {
	start, end, err := timeentry.ParsePeriod(req.StartDate, req.EndDate, s.now())
	if err != nil {
		return nil, err
	}

	for _, id := range req.UserIDs {
		if _, err := s.requireDepartmentEmployee(ctx, departmentID, id); err != nil {
			if errors.Is(err, directorerrors.ErrEmployeeNotFound) {
				return nil, directorerrors.ErrUserOutsideDepartment
			}
			return nil, err
		}
	}

	entries, err := s.entries.FindByUsersAndRange(ctx, req.UserIDs, start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, len(entries))
	for i, e := range entries {
		rows[i] = ReportRow{
			FirstName:   e.User.FirstName,
			LastName:    e.User.LastName,
			Date:        e.Date.Format("2006-01-02"),
			WorkedTime:  e.MinutesWorked,
			ProjectName: e.Project.Name,
			Description: e.Description,
		}
	}
	return rows, nil
}

func (s *service) requireDepartmentEmployee(ctx context.Context, departmentID, id string) (*user.User, error) {
	if departmentID == "" {
		return nil, directorerrors.ErrNoDepartment
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directorerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	if u.Role != domain.RoleEmployee || u.DepartmentID == nil || u.DepartmentID.String() != departmentID {
		return nil, directorerrors.ErrEmployeeNotFound
	}
	return u, nil
}

func mapEntries(entries []timeentry.TimeEntry) []timeentry.EntryResponse {
	res := make([]timeentry.EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = timeentry.EntryResponse{
			ID:            e.ID.String(),
			Date:          e.Date.Format("2006-01-02"),
			MinutesWorked: e.MinutesWorked,
			Description:   e.Description,
			ProjectID:     e.ProjectID.String(),
			ProjectName:   e.Project.Name,
		}
	}
	return res
}
