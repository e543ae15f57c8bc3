package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a paid training course on the public site
type Course struct {
	ID              uint           `gorm:"primaryKey" json:"_id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Title           string         `gorm:"not null" json:"title"`
	Image           string         `gorm:"type:text" json:"image"`
	Price           float64        `gorm:"not null" json:"price"`
	DiscountedPrice float64        `json:"discountedPrice"` // expected <= Price, not enforced
	Category        string         `gorm:"type:varchar(20);not null" json:"category"` // Elite, Premium
	Level           string         `gorm:"type:varchar(20);not null" json:"level"`    // Beginner, Intermediate, Advanced
	Author          string         `gorm:"not null" json:"author"`
	Rating          float64        `json:"rating"`
	Students        int            `json:"students"`
	Duration        string         `gorm:"type:varchar(50)" json:"duration"`
	Skills          datatypes.JSON `json:"skills"`
	Overview        string         `gorm:"type:text" json:"overviewParagraph"`
}
