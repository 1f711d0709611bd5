package handlers

import (
	"net/http"
	"strings"

	"aide/middleware"
	"aide/models"
	"aide/services/auth"
	"aide/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the Google sign-in flow and session management.
type AuthHandler struct {
	Svc auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// LoginHandler returns the Google consent URL for the frontend to redirect to.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	url, err := h.Svc.LoginURL(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start login", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// CallbackHandler completes the OAuth flow and returns the session token.
func (h *AuthHandler) CallbackHandler(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing state or code", "")
		return
	}

	token, user, err := h.Svc.HandleCallback(c.Request.Context(), state, code)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Sign-in failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// MeHandler returns the authenticated identity.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.SessionUser{
		Email: middleware.UserEmail(c),
		Name:  middleware.UserName(c),
	})
}

// LogoutHandler invalidates the cached session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if err := h.Svc.Logout(c.Request.Context(), tokenString); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
