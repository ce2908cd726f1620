package domain

import (
	"context"

	"github.com/google/uuid"
)

// Booking is a write-once record. There is deliberately no foreign key to
// showtimes: reserving a seat does not verify the showtime exists, and
// cancelling a showtime leaves its bookings untouched.
type Booking struct {
	BookingID  uuid.UUID
	ShowtimeID int
	SeatNumber int
	UserID     string
}

type BookingRepository interface {
	// FindBySeat returns the booking holding the given seat on the given
	// showtime, or nil when the seat is free.
	FindBySeat(ctx context.Context, showtimeID, seatNumber int) (*Booking, error)

	// Create persists the booking and assigns its identity. The storage
	// layer enforces uniqueness of (showtime, seat); a violating insert
	// fails with ErrSeatAlreadyBooked.
	Create(ctx context.Context, booking *Booking) error
}
