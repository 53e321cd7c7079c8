package transaction

import (
	"context"
	"fmt"

	"github.com/khanut-app/backend/internal/domain/entity"
	errs "github.com/khanut-app/backend/internal/domain/error"
	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	"github.com/khanut-app/backend/internal/domain/port/persistence"
)

// ListResult is the outcome of a history query: one page of records plus
// pagination metadata
type ListResult struct {
	Transactions []entity.Transaction
	Pagination   entity.Pagination
}

// ListTransactionsUseCase serves a customer's paginated transaction history
type ListTransactionsUseCase struct {
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

// NewListTransactionsUseCase creates a new history query use case
func NewListTransactionsUseCase(
	transactionRepo persistence.TransactionRepository,
	logger coreport.Logger,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// List returns the customer's transactions ordered newest-first.
//
// The customer identity is an explicit parameter populated by the admission
// layer, never read from transport state, so a caller can only ever see its
// own records. Non-positive page/limit fall back to defaults. The page fetch
// and the total count run concurrently against the store and are joined
// before responding.
func (uc *ListTransactionsUseCase) List(
	ctx context.Context,
	customerID string,
	page int,
	limit int,
) (*ListResult, error) {
	if customerID == "" {
		return nil, errs.ErrInvalidCustomerID
	}

	page = entity.NormalizePage(page)
	limit = entity.NormalizeLimit(limit)
	offset := (page - 1) * limit

	type pageResult struct {
		transactions []entity.Transaction
		err          error
	}
	type countResult struct {
		total int64
		err   error
	}

	pageCh := make(chan pageResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		transactions, err := uc.transactionRepo.ListByCustomer(ctx, customerID, offset, limit)
		pageCh <- pageResult{transactions: transactions, err: err}
	}()
	go func() {
		total, err := uc.transactionRepo.CountByCustomer(ctx, customerID)
		countCh <- countResult{total: total, err: err}
	}()

	pageRes := <-pageCh
	countRes := <-countCh

	if pageRes.err != nil {
		uc.logger.Error("Failed to fetch customer transactions", map[string]any{
			"customer_id": customerID,
			"page":        page,
			"limit":       limit,
			"error":       pageRes.err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, pageRes.err.Error())
	}
	if countRes.err != nil {
		uc.logger.Error("Failed to count customer transactions", map[string]any{
			"customer_id": customerID,
			"error":       countRes.err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, countRes.err.Error())
	}

	uc.logger.Debug("Customer transactions retrieved", map[string]any{
		"customer_id": customerID,
		"page":        page,
		"limit":       limit,
		"returned":    len(pageRes.transactions),
		"total":       countRes.total,
	})

	return &ListResult{
		Transactions: pageRes.transactions,
		Pagination:   entity.NewPagination(countRes.total, page, limit),
	}, nil
}
