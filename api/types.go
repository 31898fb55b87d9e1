// Package api holds the JSON request and response bodies of the seat
// reservation HTTP API.
package api

import "time"

type SeatStatus string

const (
	Vacant   SeatStatus = "vacant"
	Booked   SeatStatus = "booked"
	Reserved SeatStatus = "reserved"
)

type BookingMode string

const (
	Contiguous BookingMode = "contiguous"
	Scatter    BookingMode = "scatter"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Seat struct {
	Number int        `json:"number"`
	Row    int        `json:"row"`
	Column int        `json:"column"`
	Status SeatStatus `json:"status"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatSummary struct {
	Total    int `json:"total"`
	Vacant   int `json:"vacant"`
	Booked   int `json:"booked"`
	Reserved int `json:"reserved"`
}

type SeatMapResponse struct {
	SeatRows      []SeatRow   `json:"seatRows"`
	BookedSeats   []int       `json:"bookedSeats"`
	Summary       SeatSummary `json:"summary"`
	MaxPerRequest int         `json:"maxPerRequest"`
}

type BookSeatsRequest struct {
	Count *int `json:"count" validate:"required"`
}

type Booking struct {
	Id        string      `json:"id"`
	Seats     []int       `json:"seats"`
	Mode      BookingMode `json:"mode"`
	CreatedAt time.Time   `json:"createdAt"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}
