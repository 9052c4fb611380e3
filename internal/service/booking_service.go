package service

import (
	"errors"
	"fmt"
	"log/slog"

	"travelbooking/internal/apperror"
	"travelbooking/internal/model"
	"travelbooking/internal/notify"
	"travelbooking/internal/repository"
)

// BookingService содержит бизнес-логику, связанную с бронированиями.
type BookingService struct {
	bookingRepo  *repository.BookingRepository
	destinations *DestinationService
	notifier     notify.Notifier
	logger       *slog.Logger
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(bookingRepo *repository.BookingRepository, destinations *DestinationService,
	notifier notify.Notifier, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		destinations: destinations,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateBooking проверяет направление по справочнику и сохраняет бронирование пользователя.
func (s *BookingService) CreateBooking(userID int, booking model.Booking) (model.Booking, error) {
	if err := s.destinations.Validate(booking.Country, booking.City, booking.Hotel); err != nil {
		return model.Booking{}, err
	}
	booking = s.bookingRepo.Add(userID, booking)
	s.logger.Info("booking confirmed", "user_id", userID, "booking_id", booking.ID, "hotel", booking.Hotel)
	if err := s.notifier.BookingConfirmed(userID, booking); err != nil {
		s.logger.Warn("booking notification failed", "booking_id", booking.ID, "error", err)
	}
	return booking, nil
}

// ListBookings возвращает все бронирования пользователя по их ID.
func (s *BookingService) ListBookings(userID int) (map[int]model.Booking, error) {
	bookings, err := s.bookingRepo.List(userID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("User having ID = %d has no bookings", userID))
	}
	return bookings, nil
}

// GetBooking возвращает бронирование пользователя по ID.
func (s *BookingService) GetBooking(userID, bookingID int) (model.Booking, error) {
	booking, err := s.bookingRepo.Get(userID, bookingID)
	if err != nil {
		return model.Booking{}, notFound(err, bookingNotFoundMessage(userID, bookingID))
	}
	return booking, nil
}

// DeleteBooking отменяет бронирование пользователя.
func (s *BookingService) DeleteBooking(userID, bookingID int) error {
	booking, err := s.bookingRepo.Delete(userID, bookingID)
	if err != nil {
		return notFound(err, bookingNotFoundMessage(userID, bookingID))
	}
	s.logger.Info("booking cancelled", "user_id", userID, "booking_id", bookingID)
	if err := s.notifier.BookingCancelled(userID, booking); err != nil {
		s.logger.Warn("booking notification failed", "booking_id", bookingID, "error", err)
	}
	return nil
}

func bookingNotFoundMessage(userID, bookingID int) string {
	return fmt.Sprintf("Booking having ID = %d cannot be found for user %d", bookingID, userID)
}

func notFound(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(message).Wrap(err)
	}
	return err
}
