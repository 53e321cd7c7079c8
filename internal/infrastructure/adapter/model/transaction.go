package model

import (
	"time"
)

// Transaction represents the database model for payment transactions
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	CustomerID  string    `gorm:"not null;index;size:64"`
	BusinessID  string    `gorm:"not null;index;size:64"`
	Amount      float64   `gorm:"not null"`
	Method      string    `gorm:"not null;size:64"`
	Status      string    `gorm:"not null;size:32;default:pending"`
	Description string    `gorm:"type:text"`
	TxRef       string    `gorm:"uniqueIndex;size:100"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
