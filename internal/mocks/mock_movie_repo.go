package mocks

import (
	"context"

	"github.com/popcornpalace/cinema-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepo struct {
	mock.Mock
	domain.MovieRepository
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockMovieRepo) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) UpdateByTitle(ctx context.Context, title string, movie *domain.Movie) error {
	args := m.Called(ctx, title, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) DeleteByTitle(ctx context.Context, title string) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}
