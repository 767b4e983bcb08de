package user

import (
	"time"

	"timetrack/internal/department"
	"timetrack/internal/domain"

	"github.com/google/uuid"
)

// User is an account created from a consumed invitation. Role is fixed
// at creation; no route mutates it. Deleting a user cascades to their
// time entries; a department with members cannot be deleted.
type User struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	FirstName    string                 `gorm:"size:150;not null"`
	LastName     string                 `gorm:"size:150;not null"`
	Email        string                 `gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string                 `gorm:"size:255;not null"`
	Role         domain.Role            `gorm:"type:smallint;not null"`
	DepartmentID *uuid.UUID             `gorm:"type:uuid;index"`
	Department   *department.Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Post         string                 `gorm:"size:200"`
	IsActive     bool                   `gorm:"not null;default:true"`
	CreatedAt    time.Time              `gorm:"autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
