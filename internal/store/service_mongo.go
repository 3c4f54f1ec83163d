package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// mongoServiceStore implements ServiceStore using MongoDB.
type mongoServiceStore struct {
	coll *mongo.Collection
}

func (s *mongoServiceStore) FindAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (s *mongoServiceStore) FindNames(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find service names: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode service names: %w", err)
	}
	return services, nil
}
