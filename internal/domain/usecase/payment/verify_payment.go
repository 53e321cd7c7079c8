package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/khanut-app/backend/internal/domain/entity"
	errs "github.com/khanut-app/backend/internal/domain/error"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

// VerifyPayment fetches the provider's view of a transaction reference and
// maps a terminal provider status onto the stored transaction. A reference
// the store does not know is still verified; only the local status update
// is skipped.
func (s *Service) VerifyPayment(ctx context.Context, txRef string) (*gateway.VerifyResponse, error) {
	if txRef == "" {
		return nil, errs.ErrInvalidTxRef
	}

	resp, err := s.gateway.VerifyPayment(ctx, txRef)
	if err != nil {
		return nil, err
	}

	if status, terminal := terminalStatus(resp.Status); terminal {
		if err := s.transactionRepo.UpdateStatusByTxRef(ctx, txRef, status); err != nil {
			if errors.Is(err, errs.ErrTransactionNotFound) {
				s.logger.Warn("Verified reference has no stored transaction", map[string]any{
					"tx_ref": txRef,
				})
			} else {
				s.logger.Error("Failed to update transaction status after verification", map[string]any{
					"tx_ref": txRef,
					"status": string(status),
					"error":  err.Error(),
				})
				return nil, err
			}
		}
	}

	return resp, nil
}

// terminalStatus maps a provider-reported status onto a stored transaction
// status. Anything that is neither success nor failure leaves the record
// pending.
func terminalStatus(providerStatus string) (entity.TransactionStatus, bool) {
	switch strings.ToLower(providerStatus) {
	case "success":
		return entity.StatusCompleted, true
	case "failed":
		return entity.StatusFailed, true
	}
	return entity.StatusPending, false
}
