package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// GetAvailable returns every service with the slots still open on the
// queried date. A date with no bookings yields every service's full template.
func (h *Handler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	ctx := c.Request.Context()

	catalog, err := h.Store.Services.FindAll(ctx)
	if err != nil {
		utils.GetLogger().Error("Failed to load service catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}

	bookings, err := h.Store.Bookings.FindByDate(ctx, date)
	if err != nil {
		utils.GetLogger().Error("Failed to load bookings", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, services.AvailableSlots(catalog, bookings))
}

// GetBookings lists the bookings of the patient named in the query. Patients
// may only read their own bookings, so the query must match the token email.
func (h *Handler) GetBookings(c *gin.Context) {
	patient := c.Query("patient")
	email := c.GetString("email")

	if patient != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	bookings, err := h.Store.Bookings.FindByPatient(c.Request.Context(), patient)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.String("patient", patient), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking inserts a booking unless the patient already holds one for
// the same treatment and date, in which case the existing booking is
// returned with success=false and nothing is written.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	ctx := c.Request.Context()

	// Check-then-insert: two identical concurrent requests can both pass the
	// check and double-book. Accepted at this traffic level; a unique index
	// on (treatment, date, patient) is the fix if it ever matters.
	existing, err := h.Store.Bookings.FindExisting(ctx, booking.Treatment, booking.Date, booking.Patient)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.GetLogger().Error("Failed to check for existing booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": existing})
		return
	}

	booking.ID = primitive.NewObjectID()
	if err := h.Store.Bookings.Insert(ctx, &booking); err != nil {
		utils.GetLogger().Error("Failed to insert booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	h.NotificationSvc.SendBookingConfirmationSMS(&booking)

	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"insertedId": booking.ID}})
}
