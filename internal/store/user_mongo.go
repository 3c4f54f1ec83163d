package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// mongoUserStore implements UserStore using MongoDB.
type mongoUserStore struct {
	coll *mongo.Collection
}

func (s *mongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", email, err)
	}
	return &user, nil
}

func (s *mongoUserStore) Upsert(ctx context.Context, email string, user *models.User) (*UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": user}
	opts := options.Update().SetUpsert(true)

	result, err := s.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", email, err)
	}
	return &UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

func (s *mongoUserStore) SetAdmin(ctx context.Context, email string) (*UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": "admin"}}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to set admin role for %s: %w", email, err)
	}
	return &UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
