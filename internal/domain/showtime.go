package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID        int
	MovieID   int
	Theater   string
	StartTime time.Time
	EndTime   time.Time
	Price     decimal.Decimal
}

// Period returns the showtime's scheduled interval as a half-open range.
func (s Showtime) Period() TimeRange {
	return TimeRange{Start: s.StartTime, End: s.EndTime}
}

// ShowtimeUpdate carries the fields of a partial update. Nil fields keep the
// value already stored on the record.
type ShowtimeUpdate struct {
	MovieID   *int
	Theater   *string
	StartTime *time.Time
	EndTime   *time.Time
	Price     *decimal.Decimal
}

// Reschedules reports whether the update touches any field that affects the
// theater-overlap invariant.
func (u ShowtimeUpdate) Reschedules() bool {
	return u.Theater != nil || u.StartTime != nil || u.EndTime != nil
}

// ApplyTo merges the update's present fields onto the given record.
func (u ShowtimeUpdate) ApplyTo(showtime *Showtime) {
	if u.MovieID != nil {
		showtime.MovieID = *u.MovieID
	}
	if u.Theater != nil {
		showtime.Theater = *u.Theater
	}
	if u.StartTime != nil {
		showtime.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		showtime.EndTime = *u.EndTime
	}
	if u.Price != nil {
		showtime.Price = *u.Price
	}
}

type ShowtimeRepository interface {
	GetByID(ctx context.Context, id int) (*Showtime, error)

	// FindOverlapping returns a showtime in the given theater whose period
	// intersects the given range, or nil when there is none. A non-zero
	// excludeID leaves that record out of the scan.
	FindOverlapping(ctx context.Context, theater string, period TimeRange, excludeID int) (*Showtime, error)

	// Create persists the showtime and assigns its identity. The write is
	// conflict-detecting: a concurrent insert that would violate the
	// theater-overlap invariant fails with ErrShowtimeOverlap.
	Create(ctx context.Context, showtime *Showtime) error

	// Update persists the full record. It fails with ErrRecordNotFound when
	// the id does not exist and with ErrShowtimeOverlap when the new period
	// conflicts with another showtime in the same theater.
	Update(ctx context.Context, showtime *Showtime) error

	Delete(ctx context.Context, id int) error
}
