package handlers

import (
	"net/http"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/cardledger/cardledger_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves spending aggregates.
type AnalyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
	profileService   portssvc.ProfileSvcFacade
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService portssvc.AnalyticsSvcFacade, profileService portssvc.ProfileSvcFacade) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, profileService: profileService}
}

func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := NewAnalyticsHandler(analyticsService, profileService)
	rg.GET("/analytics/summary", h.GetSpendingSummary)
}

// GetSpendingSummary godoc
// @Summary Spending summary
// @Description Aggregates expenses and payments over the requested window with a per-category expense breakdown.
// @Tags analytics
// @Produce json
// @Param range query string false "Time window" Enums(week, month, year) default(month)
// @Success 200 {object} dto.SpendingSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSpendingSummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.AnalyticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.analyticsService.GetSpendingSummary(c.Request.Context(), userID, domain.AnalyticsRange(params.Range))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.SpendingSummaryResponse{Summary: *summary}
	// Formatting is best effort; a missing profile degrades to raw numbers.
	if profile, err := h.profileService.GetProfile(c.Request.Context(), userID); err == nil {
		if currency, ok := domain.CurrencyByCode(profile.CurrencyCode); ok {
			resp.DisplayTotalExpenses = utils.FormatWithCurrency(summary.TotalExpenses, currency)
			resp.DisplayTotalPayments = utils.FormatWithCurrency(summary.TotalPayments, currency)
		}
	}
	c.JSON(http.StatusOK, resp)
}
