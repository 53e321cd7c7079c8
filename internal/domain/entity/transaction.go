package entity

import (
	"time"

	errs "github.com/khanut-app/backend/internal/domain/error"
	coreport "github.com/khanut-app/backend/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// Transaction statuses
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// IsValid reports whether the status is one of the allowed values
func (s TransactionStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusFailed
}

// Transaction records a payment event between a customer and a business
type Transaction struct {
	ID          uint64            // Store-assigned identifier
	CustomerID  string            // Customer the payment was made by
	BusinessID  string            // Business the payment was made to
	Amount      float64           // Payment amount, always positive
	Method      string            // Payment method label (e.g. telebirr, chapa-web)
	Status      TransactionStatus // Current status, pending until verified
	Description string            // Optional free-text description
	TxRef       string            // Gateway transaction reference
	CreatedAt   time.Time         // When the transaction was recorded
	UpdatedAt   time.Time         // Last store-managed modification time
}

// NewTransaction creates a pending transaction with basic validation
func NewTransaction(
	customerID string,
	businessID string,
	amount float64,
	method string,
	description string,
	txRef string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if customerID == "" {
		return nil, errs.ErrInvalidCustomerID
	}
	if businessID == "" {
		return nil, errs.ErrInvalidBusinessID
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if method == "" {
		return nil, errs.ErrInvalidMethod
	}

	return &Transaction{
		CustomerID:  customerID,
		BusinessID:  businessID,
		Amount:      amount,
		Method:      method,
		Status:      StatusPending,
		Description: description,
		TxRef:       txRef,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// MarkCompleted marks the transaction as successfully settled
func (t *Transaction) MarkCompleted() {
	t.Status = StatusCompleted
}

// MarkFailed marks the transaction as failed
func (t *Transaction) MarkFailed() {
	t.Status = StatusFailed
}
