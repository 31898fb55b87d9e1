package app

import (
	"context"

	"github.com/metinatakli/train-seat-reservation/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type bookingMetrics struct {
	bookings   metric.Int64Counter
	seats      metric.Int64Counter
	rejections metric.Int64Counter
	resets     metric.Int64Counter
}

// newBookingMetrics registers the booking instruments on the global meter
// provider. Until telemetry is initialized they are no-ops.
func newBookingMetrics(pool domain.SeatPool) (*bookingMetrics, error) {
	meter := otel.Meter(serviceName)

	bookings, err := meter.Int64Counter("seat.bookings",
		metric.WithDescription("Fulfilled booking requests"),
	)
	if err != nil {
		return nil, err
	}

	seats, err := meter.Int64Counter("seat.booked_seats",
		metric.WithDescription("Seats handed out by fulfilled bookings"),
		metric.WithUnit("{seat}"),
	)
	if err != nil {
		return nil, err
	}

	rejections, err := meter.Int64Counter("seat.booking_rejections",
		metric.WithDescription("Booking requests rejected by the seat pool"),
	)
	if err != nil {
		return nil, err
	}

	resets, err := meter.Int64Counter("seat.resets",
		metric.WithDescription("Seat pool resets"),
	)
	if err != nil {
		return nil, err
	}

	_, err = meter.Int64ObservableGauge("seat.occupancy",
		metric.WithDescription("Seats per occupancy status"),
		metric.WithUnit("{seat}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			snapshot := pool.Snapshot()

			o.Observe(int64(snapshot.Count(domain.SeatVacant)), metric.WithAttributes(attribute.String("status", "vacant")))
			o.Observe(int64(snapshot.Count(domain.SeatBooked)), metric.WithAttributes(attribute.String("status", "booked")))
			o.Observe(int64(snapshot.Count(domain.SeatReserved)), metric.WithAttributes(attribute.String("status", "reserved")))

			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &bookingMetrics{
		bookings:   bookings,
		seats:      seats,
		rejections: rejections,
		resets:     resets,
	}, nil
}

func (m *bookingMetrics) recordBooking(ctx context.Context, booking domain.Booking) {
	mode := metric.WithAttributes(attribute.String("mode", string(booking.Mode)))

	m.bookings.Add(ctx, 1, mode)
	m.seats.Add(ctx, int64(len(booking.Seats)), mode)
}

func (m *bookingMetrics) recordRejection(ctx context.Context, reason string) {
	m.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *bookingMetrics) recordReset(ctx context.Context) {
	m.resets.Add(ctx, 1)
}
