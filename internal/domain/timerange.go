package domain

import "time"

// TimeRange is a half-open interval [Start, End). The end instant is
// excluded, so two ranges that only share an endpoint do not overlap.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Validate reports whether the range is well-formed, requiring Start to be
// strictly before End.
func (r TimeRange) Validate() error {
	if !r.Start.Before(r.End) {
		return ErrEndBeforeStart
	}

	return nil
}

// Overlaps reports whether the two ranges intersect. Both comparisons are
// strict, so back-to-back ranges (one's End equal to the other's Start) are
// not considered overlapping.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}
