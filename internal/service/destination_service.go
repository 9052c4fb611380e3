package service

import (
	"errors"

	"travelbooking/internal/model"
	"travelbooking/internal/repository"
)

// DestinationService предоставляет справочник направлений и проверку выбора отеля.
type DestinationService struct {
	destinationRepo *repository.DestinationRepository
}

// NewDestinationService создает новый сервис направлений.
func NewDestinationService(destinationRepo *repository.DestinationRepository) *DestinationService {
	return &DestinationService{destinationRepo: destinationRepo}
}

// Destinations возвращает весь справочник.
func (s *DestinationService) Destinations() model.Destinations {
	return s.destinationRepo.All()
}

// Validate проверяет страну, город и отель по справочнику.
func (s *DestinationService) Validate(country, city, hotel string) error {
	err := s.destinationRepo.Validate(country, city, hotel)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInvalidCountry):
		return ErrInvalidCountry.Wrap(err)
	case errors.Is(err, repository.ErrInvalidCity):
		return ErrInvalidCity.Wrap(err)
	case errors.Is(err, repository.ErrInvalidHotel):
		return ErrInvalidHotel.Wrap(err)
	default:
		return err
	}
}
