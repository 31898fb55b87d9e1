package domain

import (
	"fmt"
	"time"
)

type SeatStatus int

const (
	SeatVacant SeatStatus = iota
	SeatBooked
	SeatReserved
)

func (s SeatStatus) String() string {
	switch s {
	case SeatVacant:
		return "vacant"
	case SeatBooked:
		return "booked"
	case SeatReserved:
		return "reserved"
	default:
		return fmt.Sprintf("SeatStatus(%d)", int(s))
	}
}

func (s SeatStatus) MarshalText() ([]byte, error) {
	switch s {
	case SeatVacant, SeatBooked, SeatReserved:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown seat status %d", int(s))
	}
}

func (s *SeatStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vacant":
		*s = SeatVacant
	case "booked":
		*s = SeatBooked
	case "reserved":
		*s = SeatReserved
	default:
		return fmt.Errorf("unknown seat status %q", text)
	}

	return nil
}

type SeatPosition struct {
	Row int
	Col int
}

type BookingMode string

const (
	BookingContiguous BookingMode = "contiguous"
	BookingScatter    BookingMode = "scatter"
)

// Booking is a fulfilled request. Seats holds global seat numbers in the order
// they were allocated.
type Booking struct {
	ID        string
	Seats     []int
	Mode      BookingMode
	CreatedAt time.Time
}

// Snapshot is a detached copy of the pool state. Rows[i][j] is the status of
// the seat in row i, column j.
type Snapshot struct {
	Rows          [][]SeatStatus
	History       []int
	Bookings      []Booking
	MaxPerRequest int
}

func (s Snapshot) Count(status SeatStatus) int {
	n := 0

	for _, row := range s.Rows {
		for _, seat := range row {
			if seat == status {
				n++
			}
		}
	}

	return n
}

type SeatPool interface {
	Book(count int) (Booking, error)
	Reset()
	Snapshot() Snapshot
	Layout() Layout
	MaxPerRequest() int
}
