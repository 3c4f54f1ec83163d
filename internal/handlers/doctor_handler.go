package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// GetDoctors lists every doctor.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Store.Doctors.FindAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor inserts a new doctor record.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	doctor.ID = primitive.NewObjectID()
	if err := h.Store.Doctors.Insert(c.Request.Context(), &doctor); err != nil {
		utils.GetLogger().Error("Failed to insert doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": doctor.ID})
}

// DeleteDoctor removes the doctor with the email in the path.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")

	deleted, err := h.Store.Doctors.DeleteByEmail(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("Failed to delete doctor", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
