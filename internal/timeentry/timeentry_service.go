package timeentry

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"timetrack/internal/calendar"
	"timetrack/internal/shared/apperror"
	timeentryerrors "timetrack/internal/timeentry/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timeentry_service.go -destination=mock/timeentry_service_mock.go -package=mock
type Service interface {
	CalendarPage(ctx context.Context, yearStr, monthName string) (CalendarResponse, error)
	DayEntries(ctx context.Context, userID string, year, month, day int) ([]EntryResponse, error)
	Create(ctx context.Context, userID, departmentID string, year, month, day int, req CreateEntryRequest) (EntryResponse, error)
	Update(ctx context.Context, userID, departmentID, id string, req UpdateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, userID, id string) error
	Selection(ctx context.Context, userID string, req SelectionRequest) ([]EntryResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	holidays calendar.HolidayProvider
	now      func() time.Time
}

func NewService(db *sql.DB, repo Repository, holidays calendar.HolidayProvider) Service {
	return &service{
		db:       db,
		repo:     repo,
		holidays: holidays,
		now:      time.Now,
	}
}

// CalendarPage renders the month grid. Unknown or out-of-window
// selections fall back to the current month rather than erroring.
func (s *service) CalendarPage(ctx context.Context, yearStr, monthName string) (CalendarResponse, error) {
	now := s.now()

	year, err := strconv.Atoi(yearStr)
	if err != nil || !calendar.YearSupported(year, now) {
		year = now.Year()
	}
	month, ok := calendar.MonthNumber(monthName)
	if !ok {
		month = int(now.Month())
	}

	weeks, err := calendar.MonthLayout(year, month, calendar.MonthHolidays(s.holidays, year, month))
	if err != nil {
		return CalendarResponse{}, err
	}

	return CalendarResponse{
		Year:      year,
		Month:     month,
		MonthName: calendar.MonthNames[month-1],
		Today:     now.Format("2006-01-02"),
		Weeks:     weeks,
		Years:     calendar.Years(now),
		Months:    calendar.MonthNames,
	}, nil
}

func (s *service) DayEntries(ctx context.Context, userID string, year, month, day int) ([]EntryResponse, error) {
	date, ok := s.dayDate(year, month, day)
	if !ok {
		return nil, timeentryerrors.ErrDateNotFound
	}

	entries, err := s.repo.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return mapToEntryResponses(entries), nil
}

func (s *service) Create(ctx context.Context, userID, departmentID string, year, month, day int, req CreateEntryRequest) (EntryResponse, error) {
	date, ok := s.dayDate(year, month, day)
	if !ok {
		return EntryResponse{}, timeentryerrors.ErrDateNotFound
	}

	projectID, err := s.requireAllowedProject(ctx, departmentID, req.ProjectID)
	if err != nil {
		return EntryResponse{}, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return EntryResponse{}, apperror.ErrUnauthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &TimeEntry{
		ID:            uuid.New(),
		Date:          date,
		MinutesWorked: *req.MinutesWorked,
		Description:   req.Description,
		ProjectID:     projectID,
		UserID:        uid,
	}

	if err := qtx.Create(ctx, e); err != nil {
		return EntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EntryResponse{}, err
	}

	// The row is committed; the re-read only preloads the project for
	// the response, so a failure here falls back to the bare entry.
	created, err := s.repo.FindOwned(ctx, userID, e.ID.String())
	if err != nil {
		return mapToEntryResponse(*e), nil
	}
	return mapToEntryResponse(*created), nil
}

func (s *service) Update(ctx context.Context, userID, departmentID, id string, req UpdateEntryRequest) (EntryResponse, error) {
	projectID, err := s.requireAllowedProject(ctx, departmentID, req.ProjectID)
	if err != nil {
		return EntryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EntryResponse{}, timeentryerrors.ErrEntryNotFound
		}
		return EntryResponse{}, err
	}

	e.ProjectID = projectID
	e.MinutesWorked = *req.MinutesWorked
	e.Description = req.Description

	if err := qtx.Update(ctx, e); err != nil {
		return EntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EntryResponse{}, err
	}

	// Same as Create: the update is committed, the re-read only
	// enriches the response with the project name.
	updated, err := s.repo.FindOwned(ctx, userID, id)
	if err != nil {
		return mapToEntryResponse(*e), nil
	}
	return mapToEntryResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return timeentryerrors.ErrEntryNotFound
		}
		return err
	}

	return tx.Commit()
}

func (s *service) Selection(ctx context.Context, userID string, req SelectionRequest) ([]EntryResponse, error) {
	start, end, err := ParsePeriod(req.StartDate, req.EndDate, s.now())
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return mapToEntryResponses(entries), nil
}

// requireAllowedProject restricts entry projects to the ones attached
// to the caller's department.
func (s *service) requireAllowedProject(ctx context.Context, departmentID, projectID string) (uuid.UUID, error) {
	if departmentID == "" {
		return uuid.Nil, timeentryerrors.ErrNoDepartment
	}

	pid, err := uuid.Parse(projectID)
	if err != nil {
		return uuid.Nil, timeentryerrors.ErrProjectNotAllowed
	}

	allowed, err := s.repo.ProjectInDepartment(ctx, departmentID, projectID)
	if err != nil {
		return uuid.Nil, err
	}
	if !allowed {
		return uuid.Nil, timeentryerrors.ErrProjectNotAllowed
	}
	return pid, nil
}

// dayDate validates a day-route date: a real calendar date whose year
// falls inside the supported reporting window.
func (s *service) dayDate(year, month, day int) (time.Time, bool) {
	if !calendar.YearSupported(year, s.now()) {
		return time.Time{}, false
	}
	return dateFromParts(year, month, day)
}

// dateFromParts builds a calendar date, rejecting anything time.Date
// would silently normalize (like Feb 30).
func dateFromParts(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
