package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/server/http/dto"
)

// CheckoutHandler turns the authenticated customer's cart into an order.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler creates CheckoutHandler instance.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Checkout handles POST /api/checkout. The request body is optional: an empty
// body means checkout without a coupon. Binding always runs so a coupon sent
// with unknown content length (chunked encoding) is never dropped.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), req.CouponCode)
	if err != nil {
		var couponErr *domainErrors.CouponError
		var stockErr *domainErrors.InsufficientStockError
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart),
			errors.As(err, &couponErr),
			errors.As(err, &stockErr):
			abortError(c, http.StatusBadRequest, err)
		case domainErrors.IsTransient(err):
			c.Status(http.StatusServiceUnavailable)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:        order.ID,
		Status:    string(order.Status),
		Total:     order.Total,
		CouponID:  order.CouponID,
		CreatedAt: order.CreatedAt,
		Lines:     lines,
	}
}
