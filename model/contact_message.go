package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// ContactMessage is a message submitted through the public contact form
type ContactMessage struct {
	ID        uint           `gorm:"primaryKey" json:"_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"not null" json:"email"`
	Phone     string         `gorm:"type:varchar(20)" json:"phone"`
	Subject   string         `gorm:"not null" json:"subject"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Status    string         `gorm:"type:varchar(10);default:'unread'" json:"status"` // unread, read
}
