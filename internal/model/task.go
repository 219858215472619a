package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProjectID   uint       `gorm:"not null;index"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:"not null;default:''"`
	Status      string     `gorm:"size:16;not null;default:todo;index"`
	Deadline    *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}
