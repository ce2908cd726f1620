package app

import (
	"errors"
	"net/http"

	"github.com/popcornpalace/cinema-reservation-system/internal/api"
	"github.com/popcornpalace/cinema-reservation-system/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) CreateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CreateShowtimeRequest

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

	period := domain.TimeRange{Start: req.StartTime, End: req.EndTime}

	showtime, err := app.scheduler.Schedule(
		r.Context(),
		req.MovieID,
		req.Theater,
		period,
		decimal.NewFromFloat(req.Price),
	)

	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.scheduler.GetByID(r.Context(), id)
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.UpdateShowtimeRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	err = app.scheduler.Update(r.Context(), id, toShowtimeUpdate(req))
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) DeleteShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.scheduler.Cancel(r.Context(), id)
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) showtimeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrShowtimeOverlap):
		app.conflictResponse(w, r, err)
	case errors.Is(err, domain.ErrEndBeforeStart), errors.Is(err, domain.ErrStartTimeInPast):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtimeUpdate(req api.UpdateShowtimeRequest) domain.ShowtimeUpdate {
	update := domain.ShowtimeUpdate{
		MovieID:   req.MovieID,
		Theater:   req.Theater,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		update.Price = &price
	}

	return update
}

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		ID:        showtime.ID,
		MovieID:   showtime.MovieID,
		Theater:   showtime.Theater,
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		Price:     showtime.Price.InexactFloat64(),
	}
}
