package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/dto"
)

// CatalogHandler serves restaurant browsing plus owner and admin endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Restaurants handles GET /api/restaurants?query=.
func (h *CatalogHandler) Restaurants(c *gin.Context) {
	restaurants, err := h.facade.Restaurants(c.Request.Context(), CurrentSession(c), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		resp = append(resp, toRestaurantResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Restaurant handles GET /api/restaurants/:id.
func (h *CatalogHandler) Restaurant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	details, err := h.facade.Restaurant(c.Request.Context(), CurrentSession(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RestaurantDetailsResponse{
		Restaurant: toRestaurantResponse(details.Restaurant),
		Menu:       toMenuResponses(details.Menu),
	})
}

// Dashboard handles GET /api/owner/dashboard.
func (h *CatalogHandler) Dashboard(c *gin.Context) {
	boards, err := h.facade.OwnerDashboard(c.Request.Context(), CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(boards))
}

// CreateRestaurant handles POST /api/owner/restaurants.
func (h *CatalogHandler) CreateRestaurant(c *gin.Context) {
	var req dto.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	created, err := h.facade.CreateRestaurant(c.Request.Context(), CurrentSession(c), model.Restaurant{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		CuisineType:  req.CuisineType,
		ImageURL:     req.ImageURL,
		DeliveryTime: req.DeliveryTime,
		Active:       true,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRestaurantResponse(*created))
}

// AddMenuItem handles POST /api/owner/restaurants/:id/menu.
func (h *CatalogHandler) AddMenuItem(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	created, err := h.facade.AddMenuItem(c.Request.Context(), CurrentSession(c), restaurantID, fromMenuItemRequest(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMenuItemResponse(*created))
}

// UpdateMenuItem handles PUT /api/owner/menu-items/:id.
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	item := fromMenuItemRequest(req)
	item.ID = id
	updated, err := h.facade.UpdateMenuItem(c.Request.Context(), CurrentSession(c), item)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*updated))
}

// DeleteMenuItem handles DELETE /api/owner/menu-items/:id.
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteMenuItem(c.Request.Context(), CurrentSession(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdminStats handles GET /api/admin/stats.
func (h *CatalogHandler) AdminStats(c *gin.Context) {
	stats, err := h.facade.AdminStats(c.Request.Context(), CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminStatsResponse{
		TotalRestaurants:  stats.Restaurants,
		ActiveRestaurants: stats.ActiveRestaurants,
		TotalOrders:       stats.Orders,
	})
}
