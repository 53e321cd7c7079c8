package handler

import (
	"context"
	"time"

	"github.com/khanut-app/backend/internal/domain/entity"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

type fixedTimeProvider struct{}

func (fixedTimeProvider) Now() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

// stubGateway drives the payment service from handler tests with
// function fields instead of a mocking framework
type stubGateway struct {
	initialize       func(gateway.InitializeRequest) (*gateway.InitializeResponse, error)
	initializeMobile func(gateway.InitializeRequest) (*gateway.InitializeResponse, error)
	verify           func(string) (*gateway.VerifyResponse, error)
	directCharge     func(gateway.DirectChargeRequest) (*gateway.DirectChargeResponse, error)
	authorize        func(gateway.AuthorizeRequest) (*gateway.AuthorizeResponse, error)
}

func (s *stubGateway) InitializePayment(_ context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error) {
	return s.initialize(req)
}

func (s *stubGateway) InitializeMobilePayment(_ context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error) {
	return s.initializeMobile(req)
}

func (s *stubGateway) VerifyPayment(_ context.Context, txRef string) (*gateway.VerifyResponse, error) {
	return s.verify(txRef)
}

func (s *stubGateway) ProcessDirectCharge(_ context.Context, req gateway.DirectChargeRequest) (*gateway.DirectChargeResponse, error) {
	return s.directCharge(req)
}

func (s *stubGateway) AuthorizeDirectCharge(_ context.Context, req gateway.AuthorizeRequest) (*gateway.AuthorizeResponse, error) {
	return s.authorize(req)
}

func (s *stubGateway) GenerateTxRef(gateway.TxRefOptions) string {
	return "TX-STUB"
}

// stubRepo records created transactions in memory
type stubRepo struct {
	created   []*entity.Transaction
	createErr error
	updateErr error
}

func (s *stubRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, transaction)
	return nil
}

func (s *stubRepo) ListByCustomer(context.Context, string, int, int) ([]entity.Transaction, error) {
	return nil, nil
}

func (s *stubRepo) CountByCustomer(context.Context, string) (int64, error) {
	return 0, nil
}

func (s *stubRepo) UpdateStatusByTxRef(context.Context, string, entity.TransactionStatus) error {
	return s.updateErr
}
