package payment

import (
	"context"
	"strconv"

	"github.com/khanut-app/backend/internal/domain/entity"
	errs "github.com/khanut-app/backend/internal/domain/error"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

// DirectChargeInput carries a one-step mobile-money charge request
type DirectChargeInput struct {
	CustomerID  string
	BusinessID  string
	Amount      float64
	Currency    string
	FirstName   string
	LastName    string
	Email       string
	Mobile      string
	TxRef       string
	ChargeType  gateway.ChargeType
	Description string
}

// AuthorizeDirectChargeInput completes a pending direct charge
type AuthorizeDirectChargeInput struct {
	Reference   string
	ClientToken string
	ChargeType  gateway.ChargeType
}

// ProcessDirectCharge charges a payer through a mobile-money provider and
// records the attempt as a pending transaction. A missing reference is
// generated before the charge so the record and the provider agree on it.
func (s *Service) ProcessDirectCharge(ctx context.Context, in DirectChargeInput) (*gateway.DirectChargeResponse, error) {
	if in.CustomerID == "" {
		return nil, errs.ErrInvalidCustomerID
	}
	if in.BusinessID == "" {
		return nil, errs.ErrInvalidBusinessID
	}
	if in.Amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if !in.ChargeType.IsValid() {
		return nil, errs.ErrInvalidChargeType
	}

	currency := in.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	txRef := in.TxRef
	if txRef == "" {
		txRef = s.gateway.GenerateTxRef(gateway.TxRefOptions{})
	}

	resp, err := s.gateway.ProcessDirectCharge(ctx, gateway.DirectChargeRequest{
		Amount:     strconv.FormatFloat(in.Amount, 'f', -1, 64),
		Currency:   currency,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Mobile:     in.Mobile,
		TxRef:      txRef,
		ChargeType: in.ChargeType,
	})
	if err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(
		in.CustomerID,
		in.BusinessID,
		in.Amount,
		string(in.ChargeType),
		in.Description,
		txRef,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to record direct charge", map[string]any{
			"customer_id": in.CustomerID,
			"tx_ref":      txRef,
			"charge_type": string(in.ChargeType),
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Direct charge processed", map[string]any{
		"customer_id": in.CustomerID,
		"tx_ref":      txRef,
		"charge_type": string(in.ChargeType),
	})
	return resp, nil
}

// AuthorizeDirectCharge forwards a charge authorization to the provider to
// complete the two-step direct-charge flow. No local record is touched; the
// outcome lands in the store when the charge is verified.
func (s *Service) AuthorizeDirectCharge(ctx context.Context, in AuthorizeDirectChargeInput) (*gateway.AuthorizeResponse, error) {
	if in.Reference == "" {
		return nil, errs.ErrInvalidTxRef
	}
	if !in.ChargeType.IsValid() {
		return nil, errs.ErrInvalidChargeType
	}

	return s.gateway.AuthorizeDirectCharge(ctx, gateway.AuthorizeRequest{
		Reference:   in.Reference,
		ClientToken: in.ClientToken,
		ChargeType:  in.ChargeType,
	})
}
