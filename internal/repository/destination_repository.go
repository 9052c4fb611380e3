package repository

import (
	"slices"

	"travelbooking/internal/model"
)

// DefaultDestinations - справочник направлений, доступных для бронирования.
func DefaultDestinations() model.Destinations {
	return model.Destinations{
		"Hungary": {"Budapest": {"Four Seasons", "Hilton", "Kempinski", "Corinthia"}},
		"Spain":   {"Barcelona": {"Hilton", "InterContinental", "Hyatt Regency", "Hotel Vincci Gala"}},
		"Germany": {"Berlin": {"Park Inn", "Hilton", "Pullman Schweizerhof"}},
		"Ireland": {"Belfast": {"The Merchant", "Europa Hotel", "The Fitzwilliam Hotel"}},
		"France":  {"Bordeaux": {"InterContinental", "Hotel Des Quinconces"}},
	}
}

// DestinationRepository обеспечивает доступ к неизменяемому справочнику направлений.
type DestinationRepository struct {
	destinations model.Destinations
}

// NewDestinationRepository создает репозиторий поверх переданного справочника.
func NewDestinationRepository(destinations model.Destinations) *DestinationRepository {
	return &DestinationRepository{destinations: destinations}
}

// All возвращает весь справочник. Результат не должен изменяться вызывающим кодом.
func (r *DestinationRepository) All() model.Destinations {
	return r.destinations
}

// Validate проверяет страну, затем город, затем отель; возвращается первая найденная ошибка.
func (r *DestinationRepository) Validate(country, city, hotel string) error {
	cities, ok := r.destinations[country]
	if !ok {
		return ErrInvalidCountry
	}
	hotels, ok := cities[city]
	if !ok {
		return ErrInvalidCity
	}
	if !slices.Contains(hotels, hotel) {
		return ErrInvalidHotel
	}
	return nil
}
