package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/server/http/dto"
)

// CartHandler manages the authenticated customer's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/cart.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.facade.CartItems(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, dto.CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Put handles PUT /api/cart.
func (h *CartHandler) Put(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.PutCartItem(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
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

// Remove handles DELETE /api/cart/:productID.
func (h *CartHandler) Remove(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), productID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
