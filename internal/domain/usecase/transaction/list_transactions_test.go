package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/khanut-app/backend/internal/domain/entity"
	errs "github.com/khanut-app/backend/internal/domain/error"
)

func TestListTransactionsUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("should apply defaults when page and limit are not positive", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("ListByCustomer", ctx, "cust-1", 0, entity.DefaultLimit).
			Return([]entity.Transaction{}, nil)
		mockRepo.On("CountByCustomer", ctx, "cust-1").Return(int64(0), nil)

		useCase := NewListTransactionsUseCase(mockRepo, nopLogger{})

		result, err := useCase.List(ctx, "cust-1", 0, 0)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 1, result.Pagination.CurrentPage)
		assert.Empty(t, result.Transactions)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should cap limit at the maximum", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("ListByCustomer", ctx, "cust-1", 0, entity.MaxLimit).
			Return([]entity.Transaction{}, nil)
		mockRepo.On("CountByCustomer", ctx, "cust-1").Return(int64(0), nil)

		useCase := NewListTransactionsUseCase(mockRepo, nopLogger{})

		_, err := useCase.List(ctx, "cust-1", 1, 100000)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should compute offset from page and limit", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("ListByCustomer", ctx, "cust-1", 10, 5).
			Return([]entity.Transaction{}, nil)
		mockRepo.On("CountByCustomer", ctx, "cust-1").Return(int64(12), nil)

		useCase := NewListTransactionsUseCase(mockRepo, nopLogger{})

		result, err := useCase.List(ctx, "cust-1", 3, 5)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Pagination.CurrentPage)
		assert.Equal(t, int64(12), result.Pagination.TotalItems)
		assert.Equal(t, 3, result.Pagination.TotalPages)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should return newest-first page with pagination metadata", func(t *testing.T) {
		// Customer has three transactions; page one of size two carries
		// the two most recent, newest first.
		newest := entity.Transaction{
			ID:         3,
			CustomerID: "cust-1",
			BusinessID: "biz-1",
			Amount:     780,
			Method:     "chapa-web",
			Status:     entity.StatusPending,
			CreatedAt:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		middle := entity.Transaction{
			ID:         2,
			CustomerID: "cust-1",
			BusinessID: "biz-1",
			Amount:     120.5,
			Method:     "cbebirr",
			Status:     entity.StatusCompleted,
			CreatedAt:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		}

		mockRepo := new(MockTransactionRepository)
		mockRepo.On("ListByCustomer", ctx, "cust-1", 0, 2).
			Return([]entity.Transaction{newest, middle}, nil)
		mockRepo.On("CountByCustomer", ctx, "cust-1").Return(int64(3), nil)

		useCase := NewListTransactionsUseCase(mockRepo, nopLogger{})

		result, err := useCase.List(ctx, "cust-1", 1, 2)

		assert.NoError(t, err)
		assert.Len(t, result.Transactions, 2)
		assert.Equal(t, newest.CreatedAt, result.Transactions[0].CreatedAt)
		assert.Equal(t, middle.CreatedAt, result.Transactions[1].CreatedAt)
		assert.True(t, result.Transactions[0].CreatedAt.After(result.Transactions[1].CreatedAt))

		assert.Equal(t, int64(3), result.Pagination.TotalItems)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasNextPage)
		assert.False(t, result.Pagination.HasPrevPage)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject empty customer ID without touching the store", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)

		useCase := NewListTransactionsUseCase(mockRepo, nopLogger{})

		result, err := useCase.List(ctx, "", 1, 10)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCustomerID)
		mockRepo.AssertNotCalled(t, "ListByCustomer")
		mockRepo.AssertNotCalled(t, "CountByCustomer")
	})

	t.Run("should surface page fetch failure as a store error", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("ListByCustomer", ctx, "cust-1", 0, 10).
			Return(nil, errors.New("connection reset"))
		mockRepo.On("CountByCustomer", ctx, "cust-1").Return(int64(0), nil)

		useCase := NewListTransactionsUseCase(mockRepo, nopLogger{})

		result, err := useCase.List(ctx, "cust-1", 1, 10)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("should surface count failure as a store error", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("ListByCustomer", ctx, "cust-1", 0, 10).
			Return([]entity.Transaction{}, nil)
		mockRepo.On("CountByCustomer", ctx, "cust-1").
			Return(int64(0), errors.New("timeout"))

		useCase := NewListTransactionsUseCase(mockRepo, nopLogger{})

		result, err := useCase.List(ctx, "cust-1", 1, 10)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
