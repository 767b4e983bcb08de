package timeentry

import (
	"time"

	"timetrack/internal/project"
	"timetrack/internal/user"

	"github.com/google/uuid"
)

// TimeEntry is one unit of recorded work on a date. The project FK
// restricts deletes; the user FK cascades, so removing an account takes
// its history with it.
type TimeEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	MinutesWorked int             `gorm:"not null;check:minutes_worked >= 0"`
	Description   string          `gorm:"type:text;not null"`
	ProjectID     uuid.UUID       `gorm:"type:uuid;not null"`
	Project       project.Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	User          user.User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
