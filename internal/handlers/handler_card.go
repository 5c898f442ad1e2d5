package handlers

import (
	"net/http"

	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// CardHandler handles card lifecycle requests.
type CardHandler struct {
	cardService   portssvc.CardSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService portssvc.CardSvcFacade, ledgerService portssvc.LedgerSvcFacade) *CardHandler {
	return &CardHandler{cardService: cardService, ledgerService: ledgerService}
}

// registerCardRoutes sets up the card routes under the authenticated group.
func registerCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := NewCardHandler(cardService, ledgerService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.CreateCard)
		cards.GET("", h.ListCards)
		cards.GET("/:cardID", h.GetCard)
		cards.PUT("/:cardID", h.UpdateCard)
		cards.DELETE("/:cardID", h.DeleteCard)
		cards.GET("/:cardID/transactions", h.ListCardTransactions)
	}
}

// CreateCard godoc
// @Summary Register a new card
// @Tags cards
// @Accept json
// @Produce json
// @Param card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// ListCards godoc
// @Summary List the user's cards
// @Tags cards
// @Produce json
// @Success 200 {object} dto.ListCardsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	cards, err := h.cardService.ListCards(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCardsResponse(cards))
}

// GetCard godoc
// @Summary Get one card
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} dto.CardResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards/{cardID} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	card, err := h.cardService.GetCardByID(c.Request.Context(), userID, c.Param("cardID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// UpdateCard godoc
// @Summary Edit a card
// @Description Edits card fields; setting currentBalance directly overrides the derived balance.
// @Tags cards
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param card body dto.UpdateCardRequest true "Fields to update"
// @Success 200 {object} dto.CardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards/{cardID} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), userID, c.Param("cardID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// DeleteCard godoc
// @Summary Delete a card
// @Description Removes the card and every transaction logged against it.
// @Tags cards
// @Param cardID path string true "Card ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards/{cardID} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), userID, c.Param("cardID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCardTransactions godoc
// @Summary List one card's transactions
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Param type query string false "Filter by transaction type" Enums(expense, payment)
// @Param category query string false "Filter by category"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cards/{cardID}/transactions [get]
func (h *CardHandler) ListCardTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	// Ownership check up front so an unknown card is a 404, not an empty list.
	if _, err := h.cardService.GetCardByID(c.Request.Context(), userID, c.Param("cardID")); err != nil {
		respondError(c, err)
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	params.CardID = c.Param("cardID")

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}
