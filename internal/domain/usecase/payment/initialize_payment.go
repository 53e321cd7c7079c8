package payment

import (
	"context"
	"strconv"

	"github.com/khanut-app/backend/internal/domain/entity"
	errs "github.com/khanut-app/backend/internal/domain/error"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

// InitializePaymentInput carries everything needed to start a checkout
// session and record it as a pending transaction
type InitializePaymentInput struct {
	CustomerID  string
	BusinessID  string
	Amount      float64
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	Method      string
	Description string
	TxRef       string
	CallbackURL string
	ReturnURL   string
}

// InitializePayment starts a hosted checkout session and persists a pending
// transaction carrying the session's reference. The gateway substitutes
// configured defaults for any missing reference, URLs or branding.
func (s *Service) InitializePayment(ctx context.Context, in InitializePaymentInput) (*gateway.InitializeResponse, error) {
	return s.initialize(ctx, in, false)
}

// InitializeMobilePayment starts a mobile checkout session. A phone number
// is mandatory for the mobile flow.
func (s *Service) InitializeMobilePayment(ctx context.Context, in InitializePaymentInput) (*gateway.InitializeResponse, error) {
	if in.PhoneNumber == "" {
		return nil, errs.ErrMissingPhoneNumber
	}
	return s.initialize(ctx, in, true)
}

func (s *Service) initialize(ctx context.Context, in InitializePaymentInput, mobile bool) (*gateway.InitializeResponse, error) {
	if in.CustomerID == "" {
		return nil, errs.ErrInvalidCustomerID
	}
	if in.BusinessID == "" {
		return nil, errs.ErrInvalidBusinessID
	}
	if in.Amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	currency := in.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	method := in.Method
	if method == "" {
		if mobile {
			method = "chapa-mobile"
		} else {
			method = "chapa-web"
		}
	}

	req := gateway.InitializeRequest{
		Amount:      strconv.FormatFloat(in.Amount, 'f', -1, 64),
		Currency:    currency,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		TxRef:       in.TxRef,
		CallbackURL: in.CallbackURL,
		ReturnURL:   in.ReturnURL,
	}

	var resp *gateway.InitializeResponse
	var err error
	if mobile {
		resp, err = s.gateway.InitializeMobilePayment(ctx, req)
	} else {
		resp, err = s.gateway.InitializePayment(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(
		in.CustomerID,
		in.BusinessID,
		in.Amount,
		method,
		in.Description,
		resp.TxRef,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to record initiated payment", map[string]any{
			"customer_id": in.CustomerID,
			"business_id": in.BusinessID,
			"tx_ref":      resp.TxRef,
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment initialized", map[string]any{
		"customer_id": in.CustomerID,
		"business_id": in.BusinessID,
		"tx_ref":      resp.TxRef,
		"method":      method,
	})
	return resp, nil
}
