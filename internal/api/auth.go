package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/middleware"
	"github.com/macroprep/backend/internal/service"
	"github.com/macroprep/backend/internal/types"
)

// AuthHandler serves the OTP and identity endpoints.
type AuthHandler struct {
	identity service.IIdentityService
	logger   *zap.Logger
}

// NewAuthHandler creates the handler.
func NewAuthHandler(identity service.IIdentityService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		logger:   logger,
	}
}

// RegisterRoutes attaches the auth endpoints. Renames require a valid
// session token; the OTP flow itself is unauthenticated by nature.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/send-otp", h.SendOTP)
		auth.POST("/verify-otp", h.VerifyOTP)
		auth.POST("/update-username", middleware.Auth(h.identity), h.UpdateUsername)
	}
}

// SendOTP dispatches a verification code.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req types.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing phone_number"})
		return
	}

	status, err := h.identity.SendOTP(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// VerifyOTP checks a code and, on approval, returns a session token.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req types.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing phone_number or otp_code"})
		return
	}

	result, err := h.identity.VerifyOTP(c.Request.Context(), req.PhoneNumber, req.OTPCode, req.Username)
	if errors.Is(err, service.ErrNotApproved) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "status": result.Status})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     result.Token,
		"user_id":   result.UserID,
		"user_name": result.Username,
	})
}

// UpdateUsername renames an existing user and returns a refreshed token.
func (h *AuthHandler) UpdateUsername(c *gin.Context) {
	var req types.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing phone_number or username"})
		return
	}

	token, err := h.identity.UpdateUsername(c.Request.Context(), req.PhoneNumber, req.Username)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		h.logger.Error("username update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update username"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"user_name": req.Username,
	})
}
