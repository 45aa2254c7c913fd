package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/server/http/dto"
)

// CouponHandler manages coupon endpoints: administration plus the
// customer-facing discount quote.
type CouponHandler struct {
	facade CouponFacade
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(facade CouponFacade) *CouponHandler {
	return &CouponHandler{facade: facade}
}

// Create handles POST /api/coupons (admin).
func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	coupon, err := h.facade.CreateCoupon(c.Request.Context(), &model.Coupon{
		Code:        req.Code,
		Kind:        model.CouponKind(req.Kind),
		Value:       req.Value,
		MinPurchase: req.MinPurchase,
		MaxDiscount: req.MaxDiscount,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		UsageLimit:  req.UsageLimit,
		Active:      req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount),
			errors.Is(err, domainErrors.ErrInvalidStatus):
			abortError(c, http.StatusBadRequest, err)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toCouponResponse(coupon))
}

// List handles GET /api/coupons (admin).
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.facade.Coupons(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CouponResponse, 0, len(coupons))
	for i := range coupons {
		response = append(response, toCouponResponse(&coupons[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Validate handles POST /api/coupons/validate. It quotes the discount a code
// would yield against a subtotal so customers can check a coupon before
// checkout; nothing is consumed.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req dto.CouponValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	discount, err := h.facade.ValidateCoupon(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		var couponErr *domainErrors.CouponError
		if errors.As(err, &couponErr) {
			abortError(c, http.StatusBadRequest, err)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.CouponDiscountResponse{Discount: discount})
}

// Use handles POST /api/coupons/:id/use (admin).
//
// Deprecated surface: redemption normally happens inside checkout. The
// endpoint is kept for backfill tooling and bumps the counter without an
// order.
func (h *CouponHandler) Use(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	coupon, err := h.facade.UseCoupon(c.Request.Context(), id)
	if err != nil {
		var couponErr *domainErrors.CouponError
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.As(err, &couponErr) && couponErr.Reason == domainErrors.CouponLimitReached:
			abortError(c, http.StatusConflict, err)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toCouponResponse(coupon))
}

func toCouponResponse(coupon *model.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:          coupon.ID,
		Code:        coupon.Code,
		Kind:        string(coupon.Kind),
		Value:       coupon.Value,
		MinPurchase: coupon.MinPurchase,
		MaxDiscount: coupon.MaxDiscount,
		StartsAt:    coupon.StartsAt,
		EndsAt:      coupon.EndsAt,
		UsageLimit:  coupon.UsageLimit,
		UsedCount:   coupon.UsedCount,
		Active:      coupon.Active,
	}
}
