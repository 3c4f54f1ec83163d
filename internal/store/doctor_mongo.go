package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// mongoDoctorStore implements DoctorStore using MongoDB.
type mongoDoctorStore struct {
	coll *mongo.Collection
}

func (s *mongoDoctorStore) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (s *mongoDoctorStore) Insert(ctx context.Context, doctor *models.Doctor) error {
	if _, err := s.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}
	return nil
}

func (s *mongoDoctorStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor %s: %w", email, err)
	}
	return result.DeletedCount, nil
}
