package domain

import "fmt"

const (
	DefaultRows           = 12
	DefaultNarrowFromRow  = 11
	DefaultWideCapacity   = 7
	DefaultNarrowCapacity = 3
	DefaultMaxPerRequest  = 7
)

// CapacityFunc returns the number of seats in the given row.
type CapacityFunc func(row int) int

// RowCapacity returns a CapacityFunc where rows before narrowFrom hold wide
// seats and every later row holds narrow seats.
func RowCapacity(narrowFrom, wide, narrow int) CapacityFunc {
	return func(row int) int {
		if row >= narrowFrom {
			return narrow
		}

		return wide
	}
}

// Layout is the immutable seat arrangement of a pool. Global seat numbers are
// derived from the per-row capacities, never from a fixed stride.
type Layout struct {
	capacities []int
	offsets    []int
	total      int
}

func NewLayout(rows int, capacity CapacityFunc) (Layout, error) {
	if rows < 1 {
		return Layout{}, fmt.Errorf("%w: row count must be positive, got %d", ErrInvalidLayout, rows)
	}

	if capacity == nil {
		return Layout{}, fmt.Errorf("%w: missing row capacity", ErrInvalidLayout)
	}

	layout := Layout{
		capacities: make([]int, rows),
		offsets:    make([]int, rows),
	}

	for row := 0; row < rows; row++ {
		c := capacity(row)
		if c < 1 {
			return Layout{}, fmt.Errorf("%w: row %d has capacity %d", ErrInvalidLayout, row, c)
		}

		layout.capacities[row] = c
		layout.offsets[row] = layout.total
		layout.total += c
	}

	return layout, nil
}

// DefaultLayout is the train carriage: 12 rows, 7 seats in rows 0-10 and 3 seats
// in row 11.
func DefaultLayout() Layout {
	layout, err := NewLayout(DefaultRows, RowCapacity(DefaultNarrowFromRow, DefaultWideCapacity, DefaultNarrowCapacity))
	if err != nil {
		panic(err)
	}

	return layout
}

func (l Layout) Rows() int {
	return len(l.capacities)
}

func (l Layout) Capacity(row int) int {
	if row < 0 || row >= len(l.capacities) {
		return 0
	}

	return l.capacities[row]
}

func (l Layout) TotalSeats() int {
	return l.total
}

// SeatNumber returns the 1-based global number of the seat, or 0 when the
// position is outside the layout.
func (l Layout) SeatNumber(row, col int) int {
	if col < 0 || col >= l.Capacity(row) {
		return 0
	}

	return l.offsets[row] + col + 1
}

func (l Layout) Position(number int) (SeatPosition, bool) {
	if number < 1 || number > l.total {
		return SeatPosition{}, false
	}

	for row := len(l.offsets) - 1; row >= 0; row-- {
		if number > l.offsets[row] {
			return SeatPosition{Row: row, Col: number - l.offsets[row] - 1}, true
		}
	}

	return SeatPosition{}, false
}
