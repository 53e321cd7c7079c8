package payment

import (
	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
	"github.com/khanut-app/backend/internal/domain/port/persistence"
)

// DefaultCurrency is used when an initiation request carries no currency
const DefaultCurrency = "ETB"

// Service drives payment flows against the gateway and records their
// outcomes as transactions in the store
type Service struct {
	gateway         gateway.PaymentGateway
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new payment service
func NewService(
	gw gateway.PaymentGateway,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		gateway:         gw,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}
