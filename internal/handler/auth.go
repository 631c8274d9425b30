package handler

import (
	"net/http"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/apierror"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/middleware"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login POST /manager/login
// A wrong password and a valid non-staff account get the same response on
// purpose.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(service.ErrUnauthorized.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh POST /manager/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout POST /manager/logout (requires auth)
// Revokes the presented token for its remaining lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetToken(c)
	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to log out"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}
