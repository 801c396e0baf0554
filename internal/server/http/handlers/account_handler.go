package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/dto"
)

// AccountHandler manages profile and address endpoints.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler constructs AccountHandler.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// Profile handles GET /api/profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	profile, err := h.facade.Profile(c.Request.Context(), CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile handles PUT /api/profile.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	profile, err := h.facade.UpdateProfile(c.Request.Context(), CurrentSession(c), model.Profile{
		Name:     req.Name,
		Phone:    req.Phone,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// ChangePassword handles PUT /api/profile/password.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req dto.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	err := h.facade.ChangePassword(c.Request.Context(), CurrentSession(c), model.PasswordChange{
		CurrentPassword: req.OldPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Addresses handles GET /api/addresses.
func (h *AccountHandler) Addresses(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		resp = append(resp, toAddressResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// AddAddress handles POST /api/addresses.
func (h *AccountHandler) AddAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	created, err := h.facade.AddAddress(c.Request.Context(), CurrentSession(c), fromAddressRequest(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAddressResponse(*created))
}

// UpdateAddress handles PUT /api/addresses/:id.
func (h *AccountHandler) UpdateAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	address := fromAddressRequest(req)
	address.ID = id
	updated, err := h.facade.UpdateAddress(c.Request.Context(), CurrentSession(c), address)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAddressResponse(*updated))
}

// DeleteAddress handles DELETE /api/addresses/:id.
func (h *AccountHandler) DeleteAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteAddress(c.Request.Context(), CurrentSession(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
