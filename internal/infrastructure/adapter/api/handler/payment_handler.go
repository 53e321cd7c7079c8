package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/khanut-app/backend/internal/domain/error"
	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
	paymentUseCase "github.com/khanut-app/backend/internal/domain/usecase/payment"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/dto"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/middleware"
)

// PaymentHandler handles payment-initiation HTTP requests
type PaymentHandler struct {
	paymentService *paymentUseCase.Service
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService *paymentUseCase.Service, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// InitializePayment handles POST /api/payment/initialize
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	h.initialize(c, false)
}

// InitializeMobilePayment handles POST /api/payment/mobile/initialize
func (h *PaymentHandler) InitializeMobilePayment(c *gin.Context) {
	h.initialize(c, true)
}

func (h *PaymentHandler) initialize(c *gin.Context, mobile bool) {
	var req dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	input := paymentUseCase.InitializePaymentInput{
		CustomerID:  middleware.CallerID(c),
		BusinessID:  req.BusinessID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Method:      req.Method,
		Description: req.Description,
		TxRef:       req.TxRef,
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
	}

	var resp *gateway.InitializeResponse
	var err error
	if mobile {
		resp, err = h.paymentService.InitializeMobilePayment(c.Request.Context(), input)
	} else {
		resp, err = h.paymentService.InitializePayment(c.Request.Context(), input)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InitializePaymentResponse{
		CheckoutURL: resp.CheckoutURL,
		TxRef:       resp.TxRef,
	})
}

// VerifyPayment handles GET /api/payment/verify/:tx_ref
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	txRef := c.Param("tx_ref")

	resp, err := h.paymentService.VerifyPayment(c.Request.Context(), txRef)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Status:   resp.Status,
		TxRef:    resp.TxRef,
		Amount:   resp.Amount,
		Currency: resp.Currency,
		Method:   resp.Method,
	})
}

// ProcessDirectCharge handles POST /api/payment/direct-charge
func (h *PaymentHandler) ProcessDirectCharge(c *gin.Context) {
	var req dto.DirectChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	resp, err := h.paymentService.ProcessDirectCharge(c.Request.Context(), paymentUseCase.DirectChargeInput{
		CustomerID:  middleware.CallerID(c),
		BusinessID:  req.BusinessID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Mobile:      req.Mobile,
		TxRef:       req.TxRef,
		ChargeType:  gateway.ChargeType(req.ChargeType),
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DirectChargeResponse{
		Status:   resp.Status,
		Message:  resp.Message,
		TxRef:    resp.TxRef,
		AuthType: resp.AuthType,
	})
}

// AuthorizeDirectCharge handles POST /api/payment/direct-charge/authorize
func (h *PaymentHandler) AuthorizeDirectCharge(c *gin.Context) {
	var req dto.AuthorizeDirectChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	resp, err := h.paymentService.AuthorizeDirectCharge(c.Request.Context(), paymentUseCase.AuthorizeDirectChargeInput{
		Reference:   req.Reference,
		ClientToken: req.ClientToken,
		ChargeType:  gateway.ChargeType(req.ChargeType),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorizeDirectChargeResponse{
		Status:  resp.Status,
		Message: resp.Message,
	})
}

// respondError translates domain errors into HTTP responses: validation
// failures become 400s, provider failures 502, everything else 500
func (h *PaymentHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidCustomerID),
		errors.Is(err, domainerr.ErrInvalidBusinessID),
		errors.Is(err, domainerr.ErrInvalidMethod),
		errors.Is(err, domainerr.ErrInvalidChargeType),
		errors.Is(err, domainerr.ErrMissingPhoneNumber),
		errors.Is(err, domainerr.ErrInvalidTxRef):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case errors.Is(err, domainerr.ErrDuplicateTxRef):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    domainerr.CodeDuplicateTxRef,
			Message: err.Error(),
		})
	case domainerr.IsGatewayError(err):
		h.logger.Error("Payment provider request failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Code:    domainerr.CodeGatewayFailure,
			Message: "Payment provider request failed",
		})
	default:
		h.logger.Error("Payment operation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "Internal server error",
		})
	}
}
