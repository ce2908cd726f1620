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

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price
		FROM showtimes
		WHERE id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) FindOverlapping(
	ctx context.Context,
	theater string,
	period domain.TimeRange,
	excludeID int) (*domain.Showtime, error) {

	query := `
		SELECT id, movie_id, theater, start_time, end_time, price
		FROM showtimes
		WHERE theater = $1
			AND start_time < $3
			AND end_time > $2
			AND id != $4
		LIMIT 1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, theater, period.Start, period.End, excludeID).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, theater, start_time, end_time, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := p.db.QueryRow(ctx,
		query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price).Scan(&showtime.ID)

	if err != nil {
		return translateScheduleConflict(err)
	}

	return nil
}

func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $1, theater = $2, start_time = $3, end_time = $4, price = $5
		WHERE id = $6
	`

	tag, err := p.db.Exec(ctx,
		query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.ID)

	if err != nil {
		return translateScheduleConflict(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM showtimes WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// The showtimes table carries an exclusion constraint over
// (theater, tstzrange(start_time, end_time)), so the later committer of two
// racing writes for intersecting periods fails here rather than creating a
// conflicting schedule.
func translateScheduleConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
		return domain.ErrShowtimeOverlap
	}

	return err
}
