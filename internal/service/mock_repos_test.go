package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"roombook/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by user_id, plus "email:<addr>"
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	if user.Email != "" {
		m.users["email:"+user.Email] = user
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock BookingRepository ──

type mockBookingRepo struct {
	bookings map[string]*model.Booking
	seq      int
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*model.Booking)}
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if booking.BookingID == "" {
		m.seq++
		booking.BookingID = fmt.Sprintf("booking-%d", m.seq)
	}
	booking.CreatedAt = time.Now()
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) List(_ context.Context, room string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.Room == room {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) ListByDay(_ context.Context, room, day string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.Room == room && b.Day == day {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id string, deletedBy string) error {
	if b, ok := m.bookings[id]; ok {
		b.DeletedBy = &deletedBy
		delete(m.bookings, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}
