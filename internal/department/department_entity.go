package department

import (
	"time"

	"timetrack/internal/company"
	"timetrack/internal/project"

	"github.com/google/uuid"
)

// Department belongs to one company and carries the set of projects its
// members may log time against. Join rows are association data, not
// domain objects: they cascade with either side, so only users and
// invitations block a department delete.
type Department struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name      string            `gorm:"size:200;not null"`
	CompanyID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Company   company.Company   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Projects  []project.Project `gorm:"many2many:department_projects;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}
