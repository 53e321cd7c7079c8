package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidCustomerID   = 4002
	CodeInvalidBusinessID   = 4003
	CodeInvalidMethod       = 4004
	CodeInvalidChargeType   = 4005
	CodeMissingPhoneNumber  = 4006
	CodeInvalidTxRef        = 4007
	CodeInvalidRequest      = 4008
	CodeDuplicateTxRef      = 4009
	CodeUnauthorized        = 4010
	CodeForbidden           = 4030
	CodeTransactionNotFound = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeGatewayFailure = 5020
)

// Base error types
var (
	// ErrInvalidAmount is returned when a payment amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidCustomerID is returned when the customer identity is empty
	ErrInvalidCustomerID = errors.New("customer ID is required")

	// ErrInvalidBusinessID is returned when the business identity is empty
	ErrInvalidBusinessID = errors.New("business ID is required")

	// ErrInvalidMethod is returned when the payment method label is empty
	ErrInvalidMethod = errors.New("payment method is required")

	// ErrInvalidChargeType is returned when a direct-charge type is not supported
	ErrInvalidChargeType = errors.New("unsupported charge type")

	// ErrMissingPhoneNumber is returned when a mobile flow lacks a phone number
	ErrMissingPhoneNumber = errors.New("phone number is required")

	// ErrInvalidTxRef is returned when a transaction reference is empty
	ErrInvalidTxRef = errors.New("transaction reference is required")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDuplicateTxRef is returned when a transaction reference was already used
	ErrDuplicateTxRef = errors.New("transaction reference already used")

	// ErrUnauthorized is returned when the caller carries no valid identity
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when the caller is not a customer
	ErrForbidden = errors.New("customer role required")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDatabaseConnection is returned when there's a problem reaching the store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrGatewayFailure is returned when the payment provider call fails
	ErrGatewayFailure = errors.New("payment gateway request failed")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCustomerID):
		return CodeInvalidCustomerID
	case errors.Is(err, ErrInvalidBusinessID):
		return CodeInvalidBusinessID
	case errors.Is(err, ErrInvalidMethod):
		return CodeInvalidMethod
	case errors.Is(err, ErrInvalidChargeType):
		return CodeInvalidChargeType
	case errors.Is(err, ErrMissingPhoneNumber):
		return CodeMissingPhoneNumber
	case errors.Is(err, ErrInvalidTxRef):
		return CodeInvalidTxRef
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrDuplicateTxRef):
		return CodeDuplicateTxRef
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrGatewayFailure):
		return CodeGatewayFailure
	default:
		return CodeInternalServer
	}
}

// GatewayError carries context about a failed payment provider call.
// The underlying provider error is preserved unchanged for the caller.
type GatewayError struct {
	Operation string
	TxRef     string
	Err       error
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	if e.TxRef != "" {
		return fmt.Sprintf("payment gateway %s failed for %s: %v", e.Operation, e.TxRef, e.Err)
	}
	return fmt.Sprintf("payment gateway %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying provider error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrGatewayFailure
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayFailure
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "gateway_error",
		"operation":  e.Operation,
		"tx_ref":     e.TxRef,
		"error":      e.Err.Error(),
		"error_code": CodeGatewayFailure,
	}
}

// NewGatewayError wraps a provider error with operation context
func NewGatewayError(operation, txRef string, err error) error {
	return &GatewayError{
		Operation: operation,
		TxRef:     txRef,
		Err:       err,
	}
}

// IsGatewayError checks if the error originated at the payment provider boundary
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayFailure)
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}
