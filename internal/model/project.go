package model

import (
	"time"
)

type Project struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string    `gorm:"not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
