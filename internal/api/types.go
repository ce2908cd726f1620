// Package api defines the request and response shapes of the HTTP surface.
package api

import "time"

type CreateShowtimeRequest struct {
	MovieID   int       `json:"movieId" validate:"required,min=1"`
	Theater   string    `json:"theater" validate:"required,notblank"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	Price     float64   `json:"price" validate:"gte=0"`
}

type UpdateShowtimeRequest struct {
	MovieID   *int       `json:"movieId,omitempty" validate:"omitempty,min=1"`
	Theater   *string    `json:"theater,omitempty" validate:"omitempty,notblank"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Price     *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
}

type ShowtimeResponse struct {
	ID        int       `json:"id"`
	MovieID   int       `json:"movieId"`
	Theater   string    `json:"theater"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Price     float64   `json:"price"`
}

type CreateBookingRequest struct {
	ShowtimeID int    `json:"showtimeId" validate:"required,min=1"`
	SeatNumber int    `json:"seatNumber" validate:"required,min=1"`
	UserID     string `json:"userId" validate:"required,notblank"`
}

type BookingResponse struct {
	BookingID string `json:"bookingId"`
}

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,notblank"`
	Genre       string  `json:"genre" validate:"required,notblank"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	ReleaseYear int     `json:"releaseYear" validate:"required,min=1888"`
}

type UpdateMovieRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,notblank"`
	Genre       *string  `json:"genre,omitempty" validate:"omitempty,notblank"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	ReleaseYear *int     `json:"releaseYear,omitempty" validate:"omitempty,min=1888"`
}

type MovieResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthCheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
