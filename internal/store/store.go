package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// ErrNotFound is returned by point lookups when no document matches.
var ErrNotFound = errors.New("store: not found")

// UpdateResult mirrors the fields of a mongo update the API reports back to
// callers without exposing the driver type.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// ServiceStore reads the treatment catalog.
type ServiceStore interface {
	// FindAll retrieves every service with its full slot template.
	FindAll(ctx context.Context) ([]models.Service, error)
	// FindNames retrieves every service projected to its name.
	FindNames(ctx context.Context) ([]models.Service, error)
}

// BookingStore reads and writes patient bookings.
type BookingStore interface {
	// FindByDate retrieves all bookings for a calendar date.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByPatient retrieves all bookings made by a patient email.
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	// FindExisting looks up a booking by its identifying triple, slot ignored.
	FindExisting(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	// Insert stores a new booking.
	Insert(ctx context.Context, booking *models.Booking) error
}

// UserStore reads and writes user accounts.
type UserStore interface {
	// FindAll retrieves every user account.
	FindAll(ctx context.Context) ([]models.User, error)
	// FindByEmail retrieves the account for an email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert writes the user document for an email, creating it if absent.
	Upsert(ctx context.Context, email string, user *models.User) (*UpdateResult, error)
	// SetAdmin grants the admin role to an email.
	SetAdmin(ctx context.Context, email string) (*UpdateResult, error)
}

// DoctorStore reads and writes doctor records.
type DoctorStore interface {
	// FindAll retrieves every doctor.
	FindAll(ctx context.Context) ([]models.Doctor, error)
	// Insert stores a new doctor.
	Insert(ctx context.Context, doctor *models.Doctor) error
	// DeleteByEmail removes the doctor with the given email, returning the
	// number of documents deleted.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// Store bundles the per-collection repositories handlers depend on.
type Store struct {
	Services ServiceStore
	Bookings BookingStore
	Users    UserStore
	Doctors  DoctorStore
}

// NewMongoStore wires every repository to its collection in the given database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Services: &mongoServiceStore{coll: db.Collection("services")},
		Bookings: &mongoBookingStore{coll: db.Collection("bookings")},
		Users:    &mongoUserStore{coll: db.Collection("users")},
		Doctors:  &mongoDoctorStore{coll: db.Collection("doctors")},
	}
}
