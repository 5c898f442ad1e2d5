package handlers

import (
	"net/http"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the ledger operations over HTTP.
type TransactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService portssvc.LedgerSvcFacade) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// registerTransactionRoutes sets up the transaction routes under the
// authenticated group.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := NewTransactionHandler(ledgerService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.CreateTransaction)
		txns.GET("", h.ListTransactions)
		txns.GET("/:transactionID", h.GetTransaction)
		txns.PUT("/:transactionID", h.UpdateTransaction)
		txns.DELETE("/:transactionID", h.DeleteTransaction)
	}
}

// respondApplication writes a ledger outcome. A partial application is
// reported as 500 with the outcome body so the client can see exactly which
// writes landed; anything else short of Applied goes through the error map.
func respondApplication(c *gin.Context, successStatus int, app *domain.LedgerApplication, err error) {
	if err != nil {
		if app != nil && app.State == domain.PartiallyApplied {
			c.JSON(http.StatusInternalServerError, dto.ToLedgerApplicationResponse(app))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(successStatus, dto.ToLedgerApplicationResponse(app))
}

// CreateTransaction godoc
// @Summary Log a transaction
// @Description Creates an expense or payment and reconciles the card's balance. Rejected with 422 when the credit limit would be exceeded.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.LedgerApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Credit limit exceeded"
// @Failure 500 {object} dto.LedgerApplicationResponse "Partially applied"
// @Security BearerAuth
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	app, err := h.ledgerService.CreateTransaction(c.Request.Context(), userID, req)
	respondApplication(c, http.StatusCreated, app, err)
}

// ListTransactions godoc
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param cardID query string false "Filter by card"
// @Param type query string false "Filter by transaction type" Enums(expense, payment)
// @Param category query string false "Filter by category"
// @Param from query string false "Inclusive lower bound (RFC 3339)"
// @Param to query string false "Inclusive upper bound (RFC 3339)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// GetTransaction godoc
// @Summary Get one transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), userID, c.Param("transactionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// UpdateTransaction godoc
// @Summary Edit a transaction
// @Description Edits a transaction and reconciles every touched card balance. Supports reassigning to another card.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.LedgerApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Credit limit exceeded"
// @Failure 500 {object} dto.LedgerApplicationResponse "Partially applied"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	app, err := h.ledgerService.EditTransaction(c.Request.Context(), userID, c.Param("transactionID"), req)
	respondApplication(c, http.StatusOK, app, err)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction and reverses its effect on the card balance. Deleting a payment is limit-guarded like any balance increase.
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.LedgerApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Credit limit exceeded"
// @Failure 500 {object} dto.LedgerApplicationResponse "Partially applied"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	app, err := h.ledgerService.DeleteTransaction(c.Request.Context(), userID, c.Param("transactionID"))
	respondApplication(c, http.StatusOK, app, err)
}
