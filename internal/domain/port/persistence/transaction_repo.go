package persistence

import (
	"context"

	"github.com/khanut-app/backend/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction records
type TransactionRepository interface {
	// Create saves a new transaction record
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the store cannot be reached
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByCustomer returns up to limit transactions belonging to the
	// customer, ordered by creation time descending, skipping offset records
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the store cannot be reached
	ListByCustomer(ctx context.Context, customerID string, offset, limit int) ([]entity.Transaction, error)

	// CountByCustomer returns the total number of transactions belonging
	// to the customer
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the store cannot be reached
	CountByCustomer(ctx context.Context, customerID string) (int64, error)

	// UpdateStatusByTxRef updates the status of the transaction holding
	// the given gateway reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction holds the reference
	// - ErrDatabaseConnection: If the store cannot be reached
	UpdateStatusByTxRef(ctx context.Context, txRef string, status entity.TransactionStatus) error
}
