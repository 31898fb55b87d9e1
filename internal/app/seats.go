package app

import (
	"net/http"

	"github.com/metinatakli/train-seat-reservation/api"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
)

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	snapshot := app.seatPool.Snapshot()

	resp := toSeatMapResponse(app.seatPool.Layout(), snapshot)

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(layout domain.Layout, snapshot domain.Snapshot) api.SeatMapResponse {
	return api.SeatMapResponse{
		SeatRows:    toSeatRows(layout, snapshot.Rows),
		BookedSeats: snapshot.History,
		Summary: api.SeatSummary{
			Total:    layout.TotalSeats(),
			Vacant:   snapshot.Count(domain.SeatVacant),
			Booked:   snapshot.Count(domain.SeatBooked),
			Reserved: snapshot.Count(domain.SeatReserved),
		},
		MaxPerRequest: snapshot.MaxPerRequest,
	}
}

func toSeatRows(layout domain.Layout, rows [][]domain.SeatStatus) []api.SeatRow {
	seatRows := make([]api.SeatRow, len(rows))

	for row, seats := range rows {
		seatRow := api.SeatRow{
			Row:   row,
			Seats: make([]api.Seat, len(seats)),
		}

		for col, status := range seats {
			seatRow.Seats[col] = api.Seat{
				Number: layout.SeatNumber(row, col),
				Row:    row,
				Column: col,
				Status: toApiSeatStatus(status),
			}
		}

		seatRows[row] = seatRow
	}

	return seatRows
}

func toApiSeatStatus(status domain.SeatStatus) api.SeatStatus {
	switch status {
	case domain.SeatVacant:
		return api.Vacant
	case domain.SeatBooked:
		return api.Booked
	case domain.SeatReserved:
		return api.Reserved
	default:
		panic("unknown seat status: " + status.String())
	}
}
