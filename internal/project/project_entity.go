package project

import (
	"time"

	"timetrack/internal/company"

	"github.com/google/uuid"
)

// Project belongs to one company; the FK blocks deleting a company that
// still owns projects.
type Project struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"size:200;not null"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Company   company.Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}
