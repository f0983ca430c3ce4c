package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate derives the slug from the name (or re-slugifies an explicit
// slug) and de-duplicates it against existing category slugs.
func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	s, err := uniqueSlug(tx, &Category{}, cat.Name, cat.Slug)
	if err != nil {
		return err
	}
	cat.Slug = s
	return nil
}
