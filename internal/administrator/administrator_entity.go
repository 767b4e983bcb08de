package administrator

import (
	"time"

	"timetrack/internal/department"
	"timetrack/internal/domain"

	"github.com/google/uuid"
)

// Invitation is a pending registration slot. One live invitation per
// email; the row is consumed (deleted) when the candidate registers.
// Role and department are fixed by the admin here, not chosen by the
// candidate.
type Invitation struct {
	ID           uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Email        string                `gorm:"size:254;uniqueIndex:uniq_invitations_email;not null"`
	FirstName    string                `gorm:"size:150;not null"`
	LastName     string                `gorm:"size:150;not null"`
	Code         string                `gorm:"type:char(8);uniqueIndex:uniq_invitations_code;not null"`
	Role         domain.Role           `gorm:"type:smallint;not null"`
	Post         string                `gorm:"size:200"`
	DepartmentID uuid.UUID             `gorm:"type:uuid;not null"`
	Department   department.Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt    time.Time             `gorm:"autoCreateTime"`
	UpdatedAt    time.Time             `gorm:"autoUpdateTime"`
}

func (Invitation) TableName() string {
	return "invitations"
}
