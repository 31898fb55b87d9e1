package seatpool

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/metinatakli/train-seat-reservation/internal/clock"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
)

type Option func(*Pool) error

func WithMaxPerRequest(n int) Option {
	return func(p *Pool) error {
		if n < 1 {
			return fmt.Errorf("%w: max seats per request must be positive, got %d", domain.ErrInvalidConfig, n)
		}

		p.maxPerRequest = n
		return nil
	}
}

// WithReserved pre-marks the given global seat numbers as Reserved.
func WithReserved(numbers ...int) Option {
	return func(p *Pool) error {
		for _, number := range numbers {
			pos, ok := p.layout.Position(number)
			if !ok {
				return fmt.Errorf("%w: reserved seat %d", domain.ErrSeatNotFound, number)
			}

			p.seats[pos.Row][pos.Col] = domain.SeatReserved
		}

		return nil
	}
}

func WithClock(c clock.Clock) Option {
	return func(p *Pool) error {
		p.clock = c
		return nil
	}
}

// Pool allocates seats of a fixed layout. All methods are safe for concurrent
// use; each call is a single critical section.
type Pool struct {
	mu            sync.Mutex
	layout        domain.Layout
	maxPerRequest int
	clock         clock.Clock
	seats         [][]domain.SeatStatus
	bookings      []domain.Booking
}

func New(layout domain.Layout, opts ...Option) (*Pool, error) {
	if layout.Rows() == 0 {
		return nil, fmt.Errorf("%w: layout has no rows", domain.ErrInvalidLayout)
	}

	p := &Pool{
		layout:        layout,
		maxPerRequest: domain.DefaultMaxPerRequest,
		clock:         clock.NewSystem(),
		seats:         make([][]domain.SeatStatus, layout.Rows()),
	}

	for row := range p.seats {
		p.seats[row] = make([]domain.SeatStatus, layout.Capacity(row))
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Pool) Layout() domain.Layout {
	return p.layout
}

func (p *Pool) MaxPerRequest() int {
	return p.maxPerRequest
}

// Book allocates count seats. It first looks for a single row holding count
// vacant seats (first fit in row order) and otherwise collects vacant seats in
// row-major order. A failed request leaves the pool untouched.
func (p *Pool) Book(count int) (domain.Booking, error) {
	if count < 1 || count > p.maxPerRequest {
		return domain.Booking{}, fmt.Errorf("%w: %d not in [1, %d]", domain.ErrOutOfRange, count, p.maxPerRequest)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	mode := domain.BookingContiguous
	selected := p.selectWithinRow(count)

	if selected == nil {
		mode = domain.BookingScatter
		selected = p.selectScattered(count)

		if len(selected) < count {
			return domain.Booking{}, fmt.Errorf("%w: requested %d, vacant %d",
				domain.ErrInsufficientCapacity, count, len(selected))
		}
	}

	numbers := make([]int, len(selected))
	for i, pos := range selected {
		p.seats[pos.Row][pos.Col] = domain.SeatBooked
		numbers[i] = p.layout.SeatNumber(pos.Row, pos.Col)
	}

	booking := domain.Booking{
		ID:        uuid.NewString(),
		Seats:     numbers,
		Mode:      mode,
		CreatedAt: p.clock.Now(),
	}

	p.bookings = append(p.bookings, cloneBooking(booking))

	return booking, nil
}

func (p *Pool) selectWithinRow(count int) []domain.SeatPosition {
	for row, seats := range p.seats {
		vacant := make([]domain.SeatPosition, 0, len(seats))

		for col, status := range seats {
			if isVacant(status) {
				vacant = append(vacant, domain.SeatPosition{Row: row, Col: col})
			}
		}

		if len(vacant) >= count {
			return vacant[:count]
		}
	}

	return nil
}

// selectScattered stages up to count vacant seats without marking them, so the
// caller can discard a short selection.
func (p *Pool) selectScattered(count int) []domain.SeatPosition {
	selected := make([]domain.SeatPosition, 0, count)

	for row, seats := range p.seats {
		for col, status := range seats {
			if len(selected) == count {
				return selected
			}

			if isVacant(status) {
				selected = append(selected, domain.SeatPosition{Row: row, Col: col})
			}
		}
	}

	return selected
}

// Reset frees every booked seat and clears the booking history. Reserved seats
// keep their status.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, seats := range p.seats {
		for col, status := range seats {
			switch status {
			case domain.SeatBooked:
				seats[col] = domain.SeatVacant
			case domain.SeatVacant, domain.SeatReserved:
			}
		}
	}

	p.bookings = nil
}

func (p *Pool) Snapshot() domain.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := domain.Snapshot{
		Rows:          make([][]domain.SeatStatus, len(p.seats)),
		History:       []int{},
		Bookings:      make([]domain.Booking, len(p.bookings)),
		MaxPerRequest: p.maxPerRequest,
	}

	for row, seats := range p.seats {
		snapshot.Rows[row] = slices.Clone(seats)
	}

	for i, booking := range p.bookings {
		snapshot.Bookings[i] = cloneBooking(booking)
		snapshot.History = append(snapshot.History, booking.Seats...)
	}

	return snapshot
}

func isVacant(status domain.SeatStatus) bool {
	switch status {
	case domain.SeatVacant:
		return true
	case domain.SeatBooked, domain.SeatReserved:
		return false
	default:
		return false
	}
}

func cloneBooking(b domain.Booking) domain.Booking {
	b.Seats = slices.Clone(b.Seats)
	return b
}
