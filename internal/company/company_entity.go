package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is the root of the directory tree. Hard deletes only: the
// restrict FKs from departments and projects are the integrity model.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:200;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
