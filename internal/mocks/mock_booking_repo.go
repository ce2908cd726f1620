package mocks

import (
	"context"

	"github.com/popcornpalace/cinema-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) FindBySeat(ctx context.Context, showtimeID, seatNumber int) (*domain.Booking, error) {
	args := m.Called(ctx, showtimeID, seatNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
