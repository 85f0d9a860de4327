package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/collabhq/roster/api/v1"
	"github.com/collabhq/roster/internal/server/middlewares"
	srvErrors "github.com/collabhq/roster/pkg/errors"
)

// Health is the liveness check.
// (GET /health)
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, v1.StatusResponse{Ok: true})
}

// Signup registers a new user and returns a bearer token.
// (POST /api/signup)
func (h *Handler) Signup(c *gin.Context) {
	var req v1.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, token, err := h.userSrv.Signup(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case srvErrors.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case srvErrors.IsDuplicateKeyError(err):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			zap.S().Named("auth_handler").Errorw("signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		}
		return
	}

	c.JSON(http.StatusCreated, v1.NewAuthResponse(user, token))
}

// Login exchanges credentials for a bearer token.
// (POST /api/login)
func (h *Handler) Login(c *gin.Context) {
	var req v1.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, token, err := h.userSrv.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if srvErrors.IsInvalidCredentialsError(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("auth_handler").Errorw("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, v1.NewAuthResponse(user, token))
}

// Logout acknowledges the request. Tokens are stateless: there is nothing to
// revoke server-side, and an issued token stays valid until its expiry. The
// client is expected to discard its copy.
// (POST /api/logout)
func (h *Handler) Logout(c *gin.Context) {
	if identity, ok := middlewares.IdentityFrom(c); ok {
		zap.S().Named("auth_handler").Debugw("logout", "subject", identity.Subject)
	}
	c.JSON(http.StatusOK, v1.StatusResponse{Ok: true})
}
