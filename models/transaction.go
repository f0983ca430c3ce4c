package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"   // created at initiation, awaiting callback
	TransactionCompleted TransactionStatus = "completed" // verified callback received
	TransactionFailed    TransactionStatus = "failed"
)

type Transaction struct {
	ID         uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Ref        string            `gorm:"size:255;uniqueIndex;not null" json:"ref"`
	CartID     uint              `gorm:"index;not null" json:"cart_id"`
	Cart       Cart              `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"-"`
	Amount     decimal.Decimal   `gorm:"type:decimal(10,2)" json:"amount"`
	Currency   string            `gorm:"size:10;default:'NGN'" json:"currency"`
	Status     TransactionStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	UserID     *uint             `json:"user_id"`
	User       *User             `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt  time.Time         `json:"created_at"`
	ModifiedAt time.Time         `gorm:"autoUpdateTime" json:"modified_at"`
}
