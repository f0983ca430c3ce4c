package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint            `gorm:"index;not null" json:"-"`
	Category    Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Slug        string          `gorm:"size:200;uniqueIndex" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate applies the same slugging policy as Category, scanned
// against product slugs.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	s, err := uniqueSlug(tx, &Product{}, p.Name, p.Slug)
	if err != nil {
		return err
	}
	p.Slug = s
	return nil
}
