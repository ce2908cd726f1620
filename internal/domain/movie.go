package domain

import "context"

// Movie is plain catalog data. Titles are globally unique and double as the
// key for updates and deletes.
type Movie struct {
	ID          int
	Title       string
	Genre       string
	Duration    int
	Rating      float64
	ReleaseYear int
}

type MovieUpdate struct {
	Title       *string
	Genre       *string
	Duration    *int
	Rating      *float64
	ReleaseYear *int
}

func (u MovieUpdate) ApplyTo(movie *Movie) {
	if u.Title != nil {
		movie.Title = *u.Title
	}
	if u.Genre != nil {
		movie.Genre = *u.Genre
	}
	if u.Duration != nil {
		movie.Duration = *u.Duration
	}
	if u.Rating != nil {
		movie.Rating = *u.Rating
	}
	if u.ReleaseYear != nil {
		movie.ReleaseYear = *u.ReleaseYear
	}
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	UpdateByTitle(ctx context.Context, title string, movie *Movie) error
	DeleteByTitle(ctx context.Context, title string) error
}
