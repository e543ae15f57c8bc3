package model

import (
	"time"
)

// Registration is a course-interest signup from the public site
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	Email     string    `gorm:"not null" json:"email"`
	Mobile    string    `gorm:"type:varchar(20);not null" json:"mobile"`
	Course    string    `gorm:"not null" json:"course"` // free text, not a FK
}
