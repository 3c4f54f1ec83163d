package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves one slot of one service on one date for a patient.
// Treatment must match a Service name and Slot one of its template labels.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment   string             `bson:"treatment" json:"treatment"`
	Date        string             `bson:"date" json:"date"`
	Slot        string             `bson:"slot" json:"slot"`
	Patient     string             `bson:"patient" json:"patient"`
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
