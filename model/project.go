package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectCategory enumerates the catalog sections a project can belong to
type ProjectCategory string

const (
	CategoryWebDevelopment ProjectCategory = "Web Development"
	CategoryAppDevelopment ProjectCategory = "App Development"
	CategoryFullStack      ProjectCategory = "Full Stack"
	CategoryAIML           ProjectCategory = "AI & ML"
	CategoryIEEEStandards  ProjectCategory = "IEEE Standards"
	CategoryFinalYearMajor ProjectCategory = "Final Year Major"
)

// ProjectCategories lists every valid catalog category
var ProjectCategories = []ProjectCategory{
	CategoryWebDevelopment,
	CategoryAppDevelopment,
	CategoryFullStack,
	CategoryAIML,
	CategoryIEEEStandards,
	CategoryFinalYearMajor,
}

// IsValidProjectCategory reports whether s matches a known category
func IsValidProjectCategory(s string) bool {
	for _, c := range ProjectCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Project represents a showcased training project in the public catalog.
// Slug is the human-readable identifier assigned at creation time; ID is the
// store-native primary key. Lookups accept either (see services.ProjectService).
type Project struct {
	ID           uint            `gorm:"primaryKey" json:"_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
	Slug         string          `gorm:"uniqueIndex;not null" json:"id"`
	Title        string          `gorm:"not null" json:"title"`
	Category     ProjectCategory `gorm:"type:varchar(50);not null;index" json:"category"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	ImageURL     string          `gorm:"type:text" json:"imageUrl"`
	Technologies datatypes.JSON  `gorm:"not null" json:"technologies"`
}
