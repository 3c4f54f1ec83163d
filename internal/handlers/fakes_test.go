package handlers

import (
	"context"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

// In-memory stand-ins for the mongo stores.

type fakeServiceStore struct {
	services []models.Service
}

func (f *fakeServiceStore) FindAll(ctx context.Context) ([]models.Service, error) {
	return append([]models.Service(nil), f.services...), nil
}

func (f *fakeServiceStore) FindNames(ctx context.Context) ([]models.Service, error) {
	// Stays nil for an empty catalog, like cursor.All on an empty collection.
	var names []models.Service
	for _, s := range f.services {
		names = append(names, models.Service{ID: s.ID, Name: s.Name})
	}
	return names, nil
}

type fakeBookingStore struct {
	bookings []models.Booking
}

func (f *fakeBookingStore) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindExisting(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			found := b
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookingStore) Insert(ctx context.Context, booking *models.Booking) error {
	f.bookings = append(f.bookings, *booking)
	return nil
}

type fakeUserStore struct {
	users   map[string]models.User
	upserts []string
}

func (f *fakeUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (f *fakeUserStore) Upsert(ctx context.Context, email string, user *models.User) (*store.UpdateResult, error) {
	if f.users == nil {
		f.users = make(map[string]models.User)
	}
	_, existed := f.users[email]
	f.users[email] = *user
	f.upserts = append(f.upserts, email)
	if existed {
		return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &store.UpdateResult{UpsertedID: email}, nil
}

func (f *fakeUserStore) SetAdmin(ctx context.Context, email string) (*store.UpdateResult, error) {
	user, ok := f.users[email]
	if !ok {
		return &store.UpdateResult{}, nil
	}
	user.Role = "admin"
	f.users[email] = user
	return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeDoctorStore struct {
	doctors []models.Doctor
}

func (f *fakeDoctorStore) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor(nil), f.doctors...), nil
}

func (f *fakeDoctorStore) Insert(ctx context.Context, doctor *models.Doctor) error {
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeDoctorStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	kept := f.doctors[:0]
	var deleted int64
	for _, d := range f.doctors {
		if d.Email == email {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	f.doctors = kept
	return deleted, nil
}
