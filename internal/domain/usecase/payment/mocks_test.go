package payment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/khanut-app/backend/internal/domain/entity"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

// MockPaymentGateway is a testify mock for the gateway port
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) InitializePayment(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.InitializeResponse), args.Error(1)
}

func (m *MockPaymentGateway) InitializeMobilePayment(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.InitializeResponse), args.Error(1)
}

func (m *MockPaymentGateway) VerifyPayment(ctx context.Context, txRef string) (*gateway.VerifyResponse, error) {
	args := m.Called(ctx, txRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.VerifyResponse), args.Error(1)
}

func (m *MockPaymentGateway) GenerateTxRef(opts gateway.TxRefOptions) string {
	args := m.Called(opts)
	return args.String(0)
}

func (m *MockPaymentGateway) ProcessDirectCharge(ctx context.Context, req gateway.DirectChargeRequest) (*gateway.DirectChargeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.DirectChargeResponse), args.Error(1)
}

func (m *MockPaymentGateway) AuthorizeDirectCharge(ctx context.Context, req gateway.AuthorizeRequest) (*gateway.AuthorizeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.AuthorizeResponse), args.Error(1)
}

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

// fixedTimeProvider returns a constant time for deterministic records
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

// nopLogger satisfies the Logger port without asserting on log output
type nopLogger struct{}

func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }
