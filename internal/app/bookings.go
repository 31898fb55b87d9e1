package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/train-seat-reservation/api"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
)

func (app *Application) BookSeatsHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.BookSeatsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	count := *input.Count

	booking, err := app.seatPool.Book(count)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOutOfRange):
			logger.Warn("booking rejected: seat count out of range", "count", count)
			app.metrics.recordRejection(r.Context(), "out_of_range")
			app.unprocessableEntityResponse(w, r, fmt.Sprintf(ErrSeatCountOutRange, app.seatPool.MaxPerRequest()))
		case errors.Is(err, domain.ErrInsufficientCapacity):
			logger.Warn("booking rejected: not enough vacant seats", "count", count)
			app.metrics.recordRejection(r.Context(), "insufficient_capacity")
			app.editConflictResponse(w, r, ErrNotEnoughSeats)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.recordBooking(r.Context(), booking)
	logger.Info("seats booked", "booking_id", booking.ID, "seats", booking.Seats, "mode", booking.Mode)

	resp := api.BookingResponse{
		Booking: toApiBooking(booking),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListBookingsHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := app.seatPool.Snapshot()

	resp := api.BookingListResponse{
		Bookings: make([]api.Booking, len(snapshot.Bookings)),
	}

	for i, booking := range snapshot.Bookings {
		resp.Bookings[i] = toApiBooking(booking)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ResetBookingsHandler(w http.ResponseWriter, r *http.Request) {
	app.seatPool.Reset()
	app.metrics.recordReset(r.Context())

	app.contextGetLogger(r).Info("all seats have been reset")

	w.WriteHeader(http.StatusNoContent)
}

func toApiBooking(booking domain.Booking) api.Booking {
	return api.Booking{
		Id:        booking.ID,
		Seats:     booking.Seats,
		Mode:      api.BookingMode(booking.Mode),
		CreatedAt: booking.CreatedAt,
	}
}
