package handlers

import (
	"net/http"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the immutable category and currency tables.
type ReferenceHandler struct{}

func registerReferenceRoutes(rg *gin.RouterGroup) {
	h := &ReferenceHandler{}
	rg.GET("/categories", h.ListCategories)
	rg.GET("/currencies", h.ListCurrencies)
}

// CategoriesResponse wraps the category reference data.
type CategoriesResponse struct {
	Expense []domain.Category `json:"expense,omitempty"`
	Payment []domain.Category `json:"payment,omitempty"`
}

// ListCategories godoc
// @Summary List transaction categories
// @Tags reference
// @Produce json
// @Param type query string false "Restrict to one transaction type" Enums(expense, payment)
// @Success 200 {object} CategoriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	switch c.Query("type") {
	case "":
		c.JSON(http.StatusOK, CategoriesResponse{
			Expense: domain.ExpenseCategories,
			Payment: domain.PaymentCategories,
		})
	case string(domain.Expense):
		c.JSON(http.StatusOK, CategoriesResponse{Expense: domain.ExpenseCategories})
	case string(domain.Payment):
		c.JSON(http.StatusOK, CategoriesResponse{Payment: domain.PaymentCategories})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be expense or payment"})
	}
}

// CurrenciesResponse wraps the currency reference data.
type CurrenciesResponse struct {
	Currencies []domain.Currency `json:"currencies"`
}

// ListCurrencies godoc
// @Summary List supported currencies
// @Tags reference
// @Produce json
// @Success 200 {object} CurrenciesResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *ReferenceHandler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, CurrenciesResponse{Currencies: domain.SupportedCurrencies})
}
