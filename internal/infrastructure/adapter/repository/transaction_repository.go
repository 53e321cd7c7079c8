package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/khanut-app/backend/internal/domain/entity"
	errs "github.com/khanut-app/backend/internal/domain/error"
	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the persistence port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		CustomerID:  transaction.CustomerID,
		BusinessID:  transaction.BusinessID,
		Amount:      transaction.Amount,
		Method:      transaction.Method,
		Status:      string(transaction.Status),
		Description: transaction.Description,
		TxRef:       transaction.TxRef,
		CreatedAt:   transaction.CreatedAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		BusinessID:  m.BusinessID,
		Amount:      m.Amount,
		Method:      m.Method,
		Status:      entity.TransactionStatus(m.Status),
		Description: m.Description,
		TxRef:       m.TxRef,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create saves a new transaction record
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"customer_id": transaction.CustomerID,
		"business_id": transaction.BusinessID,
		"tx_ref":      transaction.TxRef,
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Transaction reference already recorded", map[string]any{
				"customer_id": transaction.CustomerID,
				"tx_ref":      transaction.TxRef,
			})
			return errs.ErrDuplicateTxRef
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"customer_id": transaction.CustomerID,
			"tx_ref":      transaction.TxRef,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID
	transaction.UpdatedAt = transactionModel.UpdatedAt

	r.logger.Info("Transaction created", map[string]any{
		"id":          transactionModel.ID,
		"customer_id": transaction.CustomerID,
		"tx_ref":      transaction.TxRef,
	})
	return nil
}

// ListByCustomer returns one page of the customer's transactions,
// newest first
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID string, offset, limit int) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"customer_id": customerID,
			"offset":      offset,
			"limit":       limit,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}

// CountByCustomer returns the total number of the customer's transactions
func (r *TransactionRepository) CountByCustomer(ctx context.Context, customerID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("customer_id = ?", customerID).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to count transactions", map[string]any{
			"customer_id": customerID,
			"error":       result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}

// UpdateStatusByTxRef updates the status of the transaction holding the
// given gateway reference
func (r *TransactionRepository) UpdateStatusByTxRef(ctx context.Context, txRef string, status entity.TransactionStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("tx_ref = ?", txRef).
		Update("status", string(status))

	if result.Error != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"tx_ref": txRef,
			"status": string(status),
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during status update", map[string]any{
			"tx_ref": txRef,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Debug("Transaction status updated", map[string]any{
		"tx_ref": txRef,
		"status": string(status),
	})
	return nil
}
