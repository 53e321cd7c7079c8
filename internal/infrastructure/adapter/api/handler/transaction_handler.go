package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	transactionUseCase "github.com/khanut-app/backend/internal/domain/usecase/transaction"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/dto"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/middleware"
)

// TransactionLister serves a customer's paginated transaction history
type TransactionLister interface {
	List(ctx context.Context, customerID string, page, limit int) (*transactionUseCase.ListResult, error)
}

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	lister TransactionLister
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(lister TransactionLister, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		lister: lister,
		logger: logger,
	}
}

// ListCustomerTransactions handles GET /api/customer/transactions.
// The caller's identity comes from the admission gate; page and limit come
// from the query string and default when absent or non-numeric.
func (h *TransactionHandler) ListCustomerTransactions(c *gin.Context) {
	customerID := middleware.CallerID(c)
	if customerID == "" {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Authentication required",
		})
		return
	}

	page := queryInt(c, "page")
	limit := queryInt(c, "limit")

	result, err := h.lister.List(c.Request.Context(), customerID, page, limit)
	if err != nil {
		h.logger.Error("Transaction listing failed", map[string]any{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to fetch transactions",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewListTransactionsResponse(result.Transactions, result.Pagination))
}

// queryInt parses an integer query parameter, returning zero for missing or
// non-numeric values so the use case applies its defaults
func queryInt(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
