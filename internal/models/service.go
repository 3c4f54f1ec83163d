package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offered by the clinic, with the template of time
// slots bookable on any given day.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots,omitempty" json:"slots,omitempty"`
}
