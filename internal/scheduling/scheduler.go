// Package scheduling assigns showtimes to theaters while keeping each
// theater's schedule free of time-overlap conflicts.
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/popcornpalace/cinema-reservation-system/internal/domain"
	"github.com/shopspring/decimal"
)

// Scheduler holds no state of its own between calls. Every operation
// consults the showtime repository fresh, and the repository's
// conflict-detecting writes close the gap between the overlap check and the
// commit under concurrent callers.
type Scheduler struct {
	showtimes domain.ShowtimeRepository
	now       func() time.Time
}

func NewScheduler(showtimes domain.ShowtimeRepository) *Scheduler {
	return &Scheduler{
		showtimes: showtimes,
		now:       time.Now,
	}
}

// Schedule validates and persists a new showtime. It fails with
// domain.ErrEndBeforeStart or domain.ErrStartTimeInPast when the period is
// invalid, and with domain.ErrShowtimeOverlap when the theater already has a
// showtime intersecting the period.
func (s *Scheduler) Schedule(
	ctx context.Context,
	movieID int,
	theater string,
	period domain.TimeRange,
	price decimal.Decimal) (*domain.Showtime, error) {

	err := s.validatePeriod(period)
	if err != nil {
		return nil, err
	}

	existing, err := s.showtimes.FindOverlapping(ctx, theater, period, 0)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, overlapError(theater, period)
	}

	showtime := &domain.Showtime{
		MovieID:   movieID,
		Theater:   theater,
		StartTime: period.Start,
		EndTime:   period.End,
		Price:     price,
	}

	err = s.showtimes.Create(ctx, showtime)
	if err != nil {
		return nil, err
	}

	return showtime, nil
}

// Update merges the partial update onto the stored record. Temporal and
// overlap validation reruns only when the update touches the start time, end
// time, or theater; other changes, such as price, commit unconditionally.
func (s *Scheduler) Update(ctx context.Context, id int, update domain.ShowtimeUpdate) error {
	showtime, err := s.showtimes.GetByID(ctx, id)
	if err != nil {
		return err
	}

	update.ApplyTo(showtime)

	if update.Reschedules() {
		period := showtime.Period()

		err = s.validatePeriod(period)
		if err != nil {
			return err
		}

		existing, err := s.showtimes.FindOverlapping(ctx, showtime.Theater, period, id)
		if err != nil {
			return err
		}

		if existing != nil {
			return overlapError(showtime.Theater, period)
		}
	}

	return s.showtimes.Update(ctx, showtime)
}

// Cancel deletes the showtime unconditionally. Bookings referencing it are
// left in place.
func (s *Scheduler) Cancel(ctx context.Context, id int) error {
	return s.showtimes.Delete(ctx, id)
}

func (s *Scheduler) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	return s.showtimes.GetByID(ctx, id)
}

func (s *Scheduler) validatePeriod(period domain.TimeRange) error {
	err := period.Validate()
	if err != nil {
		return err
	}

	if period.Start.Before(s.now()) {
		return fmt.Errorf("start time %s: %w", period.Start.Format(time.RFC3339), domain.ErrStartTimeInPast)
	}

	return nil
}

func overlapError(theater string, period domain.TimeRange) error {
	return fmt.Errorf("theater %q between %s and %s: %w",
		theater,
		period.Start.Format(time.RFC3339),
		period.End.Format(time.RFC3339),
		domain.ErrShowtimeOverlap,
	)
}
