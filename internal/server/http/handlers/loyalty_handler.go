package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/server/http/dto"
)

// LoyaltyHandler serves loyalty summaries and administrative overrides.
type LoyaltyHandler struct {
	facade LoyaltyFacade
}

// NewLoyaltyHandler constructs LoyaltyHandler.
func NewLoyaltyHandler(facade LoyaltyFacade) *LoyaltyHandler {
	return &LoyaltyHandler{facade: facade}
}

// Summary handles GET /api/loyalty.
func (h *LoyaltyHandler) Summary(c *gin.Context) {
	summary, err := h.facade.LoyaltySummary(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.LoyaltySummaryResponse{
		Points:        summary.Points,
		LifetimeSpend: summary.LifetimeSpend,
		Tier: dto.TierResponse{
			ID:              summary.Tier.ID,
			Name:            summary.Tier.Name,
			DiscountPercent: summary.Tier.DiscountPercent,
			Threshold:       summary.Tier.Threshold,
		},
	})
}

// SetPoints handles PUT /api/users/:id/points (admin).
func (h *LoyaltyHandler) SetPoints(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetPoints(c.Request.Context(), userID, req.Points); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			abortError(c, http.StatusBadRequest, err)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// SetLevel handles PUT /api/users/:id/level (admin).
func (h *LoyaltyHandler) SetLevel(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.LevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetTier(c.Request.Context(), userID, req.TierID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
