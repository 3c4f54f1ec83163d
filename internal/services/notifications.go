package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// NotificationService sends booking confirmations over SMS.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendBookingConfirmationSMS confirms a booking to the patient's phone, if
// one was provided. Delivery runs in a goroutine; failures are logged and
// never affect the booking response.
func (s *NotificationService) SendBookingConfirmationSMS(booking *models.Booking) {
	if booking.Phone == "" {
		utils.GetLogger().Debug("SMS not sent: booking has no phone number",
			zap.String("patient", booking.Patient))
		return
	}

	smsBody := fmt.Sprintf(
		"Booking confirmed: %s at %s on %s.",
		booking.Treatment,
		booking.Slot,
		booking.Date,
	)

	go sendSmsWithTextbelt(booking.Phone, smsBody)
}

func sendSmsWithTextbelt(phone, message string) {
	logger := utils.GetLogger()

	// Textbelt free key allows 1 SMS per day. Get a paid key for more.
	textbeltKey := os.Getenv("TEXTBELT_API_KEY")

	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     textbeltKey,
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		logger.Warn("Failed to send Textbelt request",
			zap.String("phone", phone), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		logger.Warn("Failed to send SMS via Textbelt",
			zap.String("phone", phone), zap.String("reason", errorMsg))
		return
	}
	logger.Info("Sent booking confirmation SMS", zap.String("phone", phone))
}
