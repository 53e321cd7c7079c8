package dto

import (
	"time"

	"github.com/khanut-app/backend/internal/domain/entity"
)

// TransactionResponse is the public shape of one transaction record
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	CustomerID  string    `json:"customerId"`
	BusinessID  string    `json:"businessId"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	TxRef       string    `json:"txRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListTransactionsResponse is the body of the transaction history endpoint
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   entity.Pagination     `json:"pagination"`
}

// NewTransactionResponse converts a transaction entity into its public shape
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		BusinessID:  t.BusinessID,
		Amount:      t.Amount,
		Method:      t.Method,
		Status:      string(t.Status),
		Description: t.Description,
		TxRef:       t.TxRef,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewListTransactionsResponse builds the history endpoint body from a page
// of entities and its pagination metadata
func NewListTransactionsResponse(transactions []entity.Transaction, pagination entity.Pagination) ListTransactionsResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}
	return ListTransactionsResponse{
		Transactions: items,
		Pagination:   pagination,
	}
}
