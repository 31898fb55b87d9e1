package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/metinatakli/train-seat-reservation/api"
	"github.com/spf13/cobra"
)

func newBookCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "book COUNT",
		Short: "Book COUNT seats, in one row when possible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("seat count must be a number: %q", args[0])
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			booking, err := opts.client().Book(ctx, count)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seats %s successfully booked!\n", joinSeats(booking.Seats))
			return nil
		},
	}
}

func newResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Release every booked seat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if err := opts.client().Reset(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All seats have been reset.")
			return nil
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the seat map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			seatMap, err := opts.client().SeatMap(ctx)
			if err != nil {
				return err
			}

			printSeatMap(cmd.OutOrStdout(), seatMap)
			return nil
		},
	}
}

// printSeatMap writes one line per row; each seat is its number followed by
// '.' when vacant, 'x' when booked and 'r' when reserved.
func printSeatMap(w io.Writer, seatMap api.SeatMapResponse) {
	for _, row := range seatMap.SeatRows {
		var b strings.Builder

		fmt.Fprintf(&b, "%2d |", row.Row)
		for _, seat := range row.Seats {
			fmt.Fprintf(&b, " %3d%c", seat.Number, statusMark(seat.Status))
		}

		fmt.Fprintln(w, b.String())
	}

	s := seatMap.Summary
	fmt.Fprintf(w, "\nVacant: %d  Booked: %d  Reserved: %d  Total: %d\n", s.Vacant, s.Booked, s.Reserved, s.Total)
	fmt.Fprintf(w, "Booked Seats: %s\n", joinSeats(seatMap.BookedSeats))
}

func statusMark(status api.SeatStatus) rune {
	switch status {
	case api.Vacant:
		return '.'
	case api.Booked:
		return 'x'
	case api.Reserved:
		return 'r'
	default:
		return '?'
	}
}

func joinSeats(seats []int) string {
	if len(seats) == 0 {
		return "None"
	}

	parts := make([]string, len(seats))
	for i, n := range seats {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ", ")
}
