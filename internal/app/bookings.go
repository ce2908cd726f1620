package app

import (
	"errors"
	"net/http"

	"github.com/popcornpalace/cinema-reservation-system/internal/api"
	"github.com/popcornpalace/cinema-reservation-system/internal/domain"
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBookingRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, err := app.ledger.Reserve(r.Context(), req.ShowtimeID, req.SeatNumber, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrSeatAlreadyBooked) {
			app.conflictResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingResponse{
		BookingID: booking.BookingID.String(),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
