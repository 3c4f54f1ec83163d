package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// mongoBookingStore implements BookingStore using MongoDB.
type mongoBookingStore struct {
	coll *mongo.Collection
}

func (s *mongoBookingStore) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"date": date})
}

func (s *mongoBookingStore) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"patient": patient})
}

func (s *mongoBookingStore) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (s *mongoBookingStore) FindExisting(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	filter := bson.M{
		"treatment": treatment,
		"date":      date,
		"patient":   patient,
	}
	var booking models.Booking
	err := s.coll.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

func (s *mongoBookingStore) Insert(ctx context.Context, booking *models.Booking) error {
	if _, err := s.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}
