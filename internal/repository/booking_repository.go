package repository

import (
	"fmt"
	"maps"
	"sync"

	"travelbooking/internal/model"
)

// BookingRepository хранит бронирования в памяти: ID пользователя -> ID бронирования -> запись.
// Счетчик ID общий для всех пользователей и никогда не сбрасывается.
type BookingRepository struct {
	mu       sync.Mutex
	bookings map[int]map[int]model.Booking
	nextID   int
}

// NewBookingRepository создает пустой репозиторий бронирований.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[int]map[int]model.Booking)}
}

// Add назначает бронированию следующий ID и сохраняет его за пользователем.
func (r *BookingRepository) Add(userID int, booking model.Booking) model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.ID = r.nextID
	r.nextID++
	userBookings, ok := r.bookings[userID]
	if !ok {
		userBookings = make(map[int]model.Booking)
		r.bookings[userID] = userBookings
	}
	userBookings[booking.ID] = booking
	return booking
}

// List возвращает копию всех бронирований пользователя.
func (r *BookingRepository) List(userID int) (map[int]model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userBookings, ok := r.bookings[userID]
	if !ok {
		return nil, fmt.Errorf("bookings of user %d: %w", userID, ErrNotFound)
	}
	return maps.Clone(userBookings), nil
}

// Get возвращает бронирование пользователя по ID.
func (r *BookingRepository) Get(userID, bookingID int) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[userID][bookingID]
	if !ok {
		return model.Booking{}, fmt.Errorf("booking %d of user %d: %w", bookingID, userID, ErrNotFound)
	}
	return booking, nil
}

// Delete удаляет бронирование и возвращает удаленную запись.
// Пользователь без бронирований удаляется целиком.
func (r *BookingRepository) Delete(userID, bookingID int) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[userID][bookingID]
	if !ok {
		return model.Booking{}, fmt.Errorf("booking %d of user %d: %w", bookingID, userID, ErrNotFound)
	}
	userBookings := r.bookings[userID]
	delete(userBookings, bookingID)
	if len(userBookings) == 0 {
		delete(r.bookings, userID)
	}
	return booking, nil
}
