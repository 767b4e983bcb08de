package timeentry

import (
	"context"
	"database/sql"
	"time"

	"timetrack/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *TimeEntry) error
	FindOwned(ctx context.Context, userID, id string) (*TimeEntry, error)
	FindByDate(ctx context.Context, userID string, date time.Time) ([]TimeEntry, error)
	FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]TimeEntry, error)
	FindByUsersAndRange(ctx context.Context, userIDs []string, start, end time.Time) ([]TimeEntry, error)
	Update(ctx context.Context, e *TimeEntry) error
	Delete(ctx context.Context, userID, id string) error
	ProjectInDepartment(ctx context.Context, departmentID, projectID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindOwned(ctx context.Context, userID, id string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Scopes(scope.Owner(userID)).
		Preload("Project").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByDate(ctx context.Context, userID string, date time.Time) ([]TimeEntry, error) {
	var entries []TimeEntry
	err := r.db.WithContext(ctx).
		Scopes(scope.Owner(userID)).
		Preload("Project").
		Where("date = ?", date.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]TimeEntry, error) {
	var entries []TimeEntry
	err := r.db.WithContext(ctx).
		Scopes(scope.Owner(userID)).
		Preload("Project").
		Where("date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByUsersAndRange(ctx context.Context, userIDs []string, start, end time.Time) ([]TimeEntry, error) {
	var entries []TimeEntry
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("User").
		Where("user_id IN ?", userIDs).
		Where("date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("user_id ASC, date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Update(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Omit("Project", "User").Save(e).Error
}

// Delete is owner scoped; a foreign id deletes nothing and surfaces as
// not found.
func (r *repository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(scope.Owner(userID)).
		Delete(&TimeEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ProjectInDepartment checks the department's allowed project set
// through the join table.
func (r *repository) ProjectInDepartment(ctx context.Context, departmentID, projectID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("department_projects").
		Where("department_id = ? AND project_id = ?", departmentID, projectID).
		Count(&count).Error
	return count > 0, err
}
