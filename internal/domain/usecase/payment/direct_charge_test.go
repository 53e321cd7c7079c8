package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/khanut-app/backend/internal/domain/entity"
	errs "github.com/khanut-app/backend/internal/domain/error"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

func TestService_ProcessDirectCharge(t *testing.T) {
	ctx := context.Background()

	validInput := DirectChargeInput{
		CustomerID: "cust-1",
		BusinessID: "biz-1",
		Amount:     75,
		Mobile:     "0911223344",
		ChargeType: gateway.ChargeTelebirr,
	}

	t.Run("should generate a reference and persist the charge", func(t *testing.T) {
		mockGateway := new(MockPaymentGateway)
		mockRepo := new(MockTransactionRepository)

		mockGateway.On("GenerateTxRef", gateway.TxRefOptions{}).Return("TX-GEN-1")
		mockGateway.On("ProcessDirectCharge", ctx, mock.MatchedBy(func(req gateway.DirectChargeRequest) bool {
			return req.TxRef == "TX-GEN-1" &&
				req.Amount == "75" &&
				req.Currency == DefaultCurrency &&
				req.ChargeType == gateway.ChargeTelebirr
		})).Return(&gateway.DirectChargeResponse{
			Status: "success",
			TxRef:  "TX-GEN-1",
		}, nil)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.TxRef == "TX-GEN-1" &&
				tx.Method == "telebirr" &&
				tx.Status == entity.StatusPending
		})).Return(nil)

		service := newTestService(mockGateway, mockRepo)

		resp, err := service.ProcessDirectCharge(ctx, validInput)

		assert.NoError(t, err)
		assert.Equal(t, "TX-GEN-1", resp.TxRef)
		mockGateway.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should keep a caller-supplied reference", func(t *testing.T) {
		mockGateway := new(MockPaymentGateway)
		mockRepo := new(MockTransactionRepository)

		mockGateway.On("ProcessDirectCharge", ctx, mock.MatchedBy(func(req gateway.DirectChargeRequest) bool {
			return req.TxRef == "TX-MINE"
		})).Return(&gateway.DirectChargeResponse{Status: "success", TxRef: "TX-MINE"}, nil)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)

		service := newTestService(mockGateway, mockRepo)

		input := validInput
		input.TxRef = "TX-MINE"

		_, err := service.ProcessDirectCharge(ctx, input)

		assert.NoError(t, err)
		mockGateway.AssertNotCalled(t, "GenerateTxRef")
	})

	t.Run("should reject unsupported charge types", func(t *testing.T) {
		mockGateway := new(MockPaymentGateway)
		mockRepo := new(MockTransactionRepository)
		service := newTestService(mockGateway, mockRepo)

		input := validInput
		input.ChargeType = gateway.ChargeType("paypal")

		resp, err := service.ProcessDirectCharge(ctx, input)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrInvalidChargeType)
		mockGateway.AssertNotCalled(t, "ProcessDirectCharge")
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		mockGateway := new(MockPaymentGateway)
		mockRepo := new(MockTransactionRepository)
		service := newTestService(mockGateway, mockRepo)

		input := validInput
		input.Amount = -5

		resp, err := service.ProcessDirectCharge(ctx, input)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestService_AuthorizeDirectCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("should forward the authorization to the provider", func(t *testing.T) {
		mockGateway := new(MockPaymentGateway)
		mockRepo := new(MockTransactionRepository)

		mockGateway.On("AuthorizeDirectCharge", ctx, gateway.AuthorizeRequest{
			Reference:   "CH-REF-1",
			ClientToken: "token-1",
			ChargeType:  gateway.ChargeMpesa,
		}).Return(&gateway.AuthorizeResponse{Status: "success", Message: "charge completed"}, nil)

		service := newTestService(mockGateway, mockRepo)

		resp, err := service.AuthorizeDirectCharge(ctx, AuthorizeDirectChargeInput{
			Reference:   "CH-REF-1",
			ClientToken: "token-1",
			ChargeType:  gateway.ChargeMpesa,
		})

		assert.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
		mockGateway.AssertExpectations(t)
	})

	t.Run("should reject an empty reference", func(t *testing.T) {
		mockGateway := new(MockPaymentGateway)
		mockRepo := new(MockTransactionRepository)
		service := newTestService(mockGateway, mockRepo)

		resp, err := service.AuthorizeDirectCharge(ctx, AuthorizeDirectChargeInput{
			ChargeType: gateway.ChargeMpesa,
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrInvalidTxRef)
	})

	t.Run("should reject unsupported charge types", func(t *testing.T) {
		mockGateway := new(MockPaymentGateway)
		mockRepo := new(MockTransactionRepository)
		service := newTestService(mockGateway, mockRepo)

		resp, err := service.AuthorizeDirectCharge(ctx, AuthorizeDirectChargeInput{
			Reference:  "CH-REF-1",
			ChargeType: gateway.ChargeType("visa"),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrInvalidChargeType)
	})
}
