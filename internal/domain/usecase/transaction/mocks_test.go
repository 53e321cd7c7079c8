package transaction

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/khanut-app/backend/internal/domain/entity"
)

// MockTransactionRepository is a testify mock for the persistence port
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByCustomer(ctx context.Context, customerID string, offset, limit int) ([]entity.Transaction, error) {
	args := m.Called(ctx, customerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountByCustomer(ctx context.Context, customerID string) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) UpdateStatusByTxRef(ctx context.Context, txRef string, status entity.TransactionStatus) error {
	args := m.Called(ctx, txRef, status)
	return args.Error(0)
}

// nopLogger satisfies the Logger port without asserting on log output
type nopLogger struct{}

func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }
