package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a back-office admin account
type User struct {
	ID           uint           `gorm:"primaryKey" json:"_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	Role         string         `gorm:"type:varchar(20);default:'admin'" json:"role"`
}
