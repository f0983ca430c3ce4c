package models

import "time"

type Cart struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CartCode string `gorm:"size:11;uniqueIndex;not null" json:"cart_code"`
	UserID   *uint  `json:"user_id"`
	User     *User  `gorm:"foreignKey:UserID" json:"-"`
	Paid     bool   `gorm:"default:false" json:"paid"`
	Items    []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time `json:"created_at"`
	Modified  time.Time `gorm:"autoUpdateTime" json:"modified"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint    `gorm:"index;not null" json:"cart_id"`
	ProductID uint    `gorm:"not null" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
}
