package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// GetUsers lists every user account.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Store.Users.FindAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, users)
}

// GetAdminStatus reports whether the given email holds the admin role. An
// email with no account is simply not an admin.
func (h *Handler) GetAdminStatus(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Store.Users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to load user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.Role == "admin"})
}

// MakeAdmin grants the admin role to the given email.
func (h *Handler) MakeAdmin(c *gin.Context) {
	email := c.Param("email")

	result, err := h.Store.Users.SetAdmin(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("Failed to set admin role", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// UpsertUser creates or updates the account for the email in the path and
// hands back a fresh bearer token for it. This doubles as the sign-in flow:
// the client proves nothing here, it just registers the email it signed in
// with and receives the token used on protected routes.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	user.Email = email

	result, err := h.Store.Users.Upsert(c.Request.Context(), email, &user)
	if err != nil {
		utils.GetLogger().Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	token, err := utils.GenerateJWT(email)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}
