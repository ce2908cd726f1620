package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/popcornpalace/cinema-reservation-system/internal/api"
	"github.com/stretchr/testify/suite"
)

type BookingsIntegrationSuite struct {
	BaseSuite
	showtimeID int
}

func TestBookingsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(BookingsIntegrationSuite))
}

func (s *BookingsIntegrationSuite) SetupTest() {
	s.truncateTables()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute).UTC()
	w := s.do(http.MethodPost, "/showtimes", api.CreateShowtimeRequest{
		MovieID:   1,
		Theater:   "Theater A",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     20.2,
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	created := decodeResponse[api.ShowtimeResponse](&s.BaseSuite, w)
	s.showtimeID = created.ID
}

func (s *BookingsIntegrationSuite) TestReserveSeat() {
	w := s.do(http.MethodPost, "/bookings", api.CreateBookingRequest{
		ShowtimeID: s.showtimeID,
		SeatNumber: 15,
		UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	resp := decodeResponse[api.BookingResponse](&s.BaseSuite, w)
	_, err := uuid.Parse(resp.BookingID)
	s.NoError(err)

	// Same seat, different user: still a conflict.
	w = s.do(http.MethodPost, "/bookings", api.CreateBookingRequest{
		ShowtimeID: s.showtimeID,
		SeatNumber: 15,
		UserID:     "7a36a979-4023-4c61-9f40-5a931ac38a13",
	})
	s.Equal(http.StatusConflict, w.Code)

	// A neighboring seat is free.
	w = s.do(http.MethodPost, "/bookings", api.CreateBookingRequest{
		ShowtimeID: s.showtimeID,
		SeatNumber: 16,
		UserID:     "7a36a979-4023-4c61-9f40-5a931ac38a13",
	})
	s.Equal(http.StatusCreated, w.Code)
}

// Bookings are not validated against the showtimes table, so a reservation
// for an unknown showtime id goes through.
func (s *BookingsIntegrationSuite) TestReserveUnknownShowtime() {
	w := s.do(http.MethodPost, "/bookings", api.CreateBookingRequest{
		ShowtimeID: 999999,
		SeatNumber: 1,
		UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
	})
	s.Equal(http.StatusCreated, w.Code)
}

func (s *BookingsIntegrationSuite) TestConcurrentReserveSameSeat() {
	const workers = 12

	payload, err := json.Marshal(api.CreateBookingRequest{
		ShowtimeID: s.showtimeID,
		SeatNumber: 7,
		UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
	})
	s.Require().NoError(err)

	results := make(chan int, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			s.handler.ServeHTTP(w, r)
			results <- w.Code
		}()
	}

	wg.Wait()
	close(results)

	var created, conflicted int
	for code := range results {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}

	s.Equal(1, created)
	s.Equal(workers-1, conflicted)

	var count int
	err = s.pool.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE showtime_id = $1 AND seat_number = $2",
		s.showtimeID, 7).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}
