package model

// Booking представляет бронирование отеля пользователем на интервал дат.
type Booking struct {
	ID       int      `json:"id"`
	Country  string   `json:"country" binding:"required"`
	City     string   `json:"city" binding:"required"`
	Hotel    string   `json:"hotel" binding:"required"`
	FromDate DateTime `json:"from_date" binding:"required"`
	ToDate   DateTime `json:"to_date" binding:"required"`
}
