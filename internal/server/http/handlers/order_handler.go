package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodfront/internal/server/http/dto"
	"github.com/polkiloo/foodfront/internal/store"
)

// OrderHandler serves the viewer's order board.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	h.list(c, c.Query("refresh") == "true")
}

// Refresh handles POST /api/orders/refresh.
func (h *OrderHandler) Refresh(c *gin.Context) {
	h.list(c, true)
}

func (h *OrderHandler) list(c *gin.Context, refresh bool) {
	views, err := h.facade.Orders(c.Request.Context(), CurrentSession(c), refresh)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(views))
	for _, v := range views {
		response = append(response, toOrderViewResponse(v))
	}
	c.JSON(http.StatusOK, response)
}

// Advance handles POST /api/orders/:id/advance.
func (h *OrderHandler) Advance(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.facade.AdvanceOrder(c.Request.Context(), CurrentSession(c), orderID)
	h.respond(c, view, err)
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.facade.CancelOrder(c.Request.Context(), CurrentSession(c), orderID)
	h.respond(c, view, err)
}

func (h *OrderHandler) respond(c *gin.Context, view store.OrderView, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderViewResponse(view))
}
