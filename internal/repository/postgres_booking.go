package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/popcornpalace/cinema-reservation-system/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) FindBySeat(
	ctx context.Context,
	showtimeID,
	seatNumber int) (*domain.Booking, error) {

	query := `
		SELECT booking_id, showtime_id, seat_number, user_id
		FROM bookings
		WHERE showtime_id = $1 AND seat_number = $2
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, showtimeID, seatNumber).Scan(
		&booking.BookingID,
		&booking.ShowtimeID,
		&booking.SeatNumber,
		&booking.UserID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (showtime_id, seat_number, user_id)
		VALUES ($1, $2, $3)
		RETURNING booking_id
	`

	err := p.db.QueryRow(ctx,
		query,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID).Scan(&booking.BookingID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrSeatAlreadyBooked
		}

		return err
	}

	return nil
}
