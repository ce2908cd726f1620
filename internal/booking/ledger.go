// Package booking reserves seats against showtimes, guaranteeing that a seat
// for a given showtime is sold to at most one customer.
package booking

import (
	"context"
	"fmt"

	"github.com/popcornpalace/cinema-reservation-system/internal/domain"
)

// Ledger is stateless between calls. The advisory find-then-insert gives
// callers a precise error on the common path; the storage layer's uniqueness
// constraint on (showtime, seat) decides the winner when two reservations
// race, so at most one can ever succeed.
type Ledger struct {
	bookings domain.BookingRepository
}

func NewLedger(bookings domain.BookingRepository) *Ledger {
	return &Ledger{bookings: bookings}
}

// Reserve books the given seat on the given showtime. It fails with
// domain.ErrSeatAlreadyBooked when the seat is taken, regardless of which
// user holds it. Whether the showtime exists is not checked.
func (l *Ledger) Reserve(ctx context.Context, showtimeID, seatNumber int, userID string) (*domain.Booking, error) {
	existing, err := l.bookings.FindBySeat(ctx, showtimeID, seatNumber)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, seatConflictError(showtimeID, seatNumber)
	}

	booking := &domain.Booking{
		ShowtimeID: showtimeID,
		SeatNumber: seatNumber,
		UserID:     userID,
	}

	err = l.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func seatConflictError(showtimeID, seatNumber int) error {
	return fmt.Errorf("seat %d on showtime %d: %w", seatNumber, showtimeID, domain.ErrSeatAlreadyBooked)
}
