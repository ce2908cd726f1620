package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrMovieAlreadyExists = errors.New("movie already exists with this title")
	ErrShowtimeOverlap    = errors.New("overlapping showtime in this theater")
	ErrSeatAlreadyBooked  = errors.New("seat already booked for this showtime")
	ErrEndBeforeStart     = errors.New("end time is earlier than start time")
	ErrStartTimeInPast    = errors.New("start time is earlier than the current time")
)
