package handlers

import (
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

// Handler carries the dependencies every route handler needs.
type Handler struct {
	Store           *store.Store
	NotificationSvc *services.NotificationService
}

func NewHandler(s *store.Store, notificationSvc *services.NotificationService) *Handler {
	return &Handler{
		Store:           s,
		NotificationSvc: notificationSvc,
	}
}
