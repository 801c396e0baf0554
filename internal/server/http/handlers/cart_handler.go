package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/dto"
	"github.com/polkiloo/foodfront/internal/store"
)

// CartHandler manages cart endpoints. Every mutation answers with the refetched cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart. ?refresh=true forces a fetch.
func (h *CartHandler) Get(c *gin.Context) {
	var (
		snap store.CartSnapshot
		err  error
	)
	if c.Query("refresh") == "true" {
		snap, err = h.facade.RefreshCart(c.Request.Context(), CurrentSession(c))
	} else {
		snap, err = h.facade.Cart(c.Request.Context(), CurrentSession(c))
	}
	h.respond(c, snap, err)
}

// Count handles GET /api/cart/count.
func (h *CartHandler) Count(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CountResponse{Count: h.facade.CartCount(c.Request.Context(), CurrentSession(c))})
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	snap, err := h.facade.AddToCart(c.Request.Context(), CurrentSession(c), req.MenuItemID, req.Quantity)
	h.respond(c, snap, err)
}

// Update handles PUT /api/cart/items/:id. A quantity below one removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	lineID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	snap, err := h.facade.UpdateCartItem(c.Request.Context(), CurrentSession(c), lineID, *req.Quantity)
	h.respond(c, snap, err)
}

// Remove handles DELETE /api/cart/items/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	lineID, ok := pathID(c, "id")
	if !ok {
		return
	}
	snap, err := h.facade.RemoveCartItem(c.Request.Context(), CurrentSession(c), lineID)
	h.respond(c, snap, err)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	snap, err := h.facade.ClearCart(c.Request.Context(), CurrentSession(c))
	h.respond(c, snap, err)
}

// Checkout handles POST /api/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	order, err := h.facade.Checkout(c.Request.Context(), CurrentSession(c), model.Checkout{
		AddressID:     req.AddressID,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func (h *CartHandler) respond(c *gin.Context, snap store.CartSnapshot, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(snap))
}
