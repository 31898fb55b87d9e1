package cli

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/metinatakli/train-seat-reservation/internal/app"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
	appvalidator "github.com/metinatakli/train-seat-reservation/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := app.Config{
		Port: 3000,
		Env:  "test",
		Pool: app.PoolConfig{
			Rows:           domain.DefaultRows,
			NarrowFromRow:  domain.DefaultNarrowFromRow,
			WideCapacity:   domain.DefaultWideCapacity,
			NarrowCapacity: domain.DefaultNarrowCapacity,
			MaxPerRequest:  domain.DefaultMaxPerRequest,
			Reserved:       []int{80},
		},
	}

	pool, err := app.NewSeatPool(cfg.Pool)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	application, err := app.NewApp(cfg, logger, appvalidator.NewValidator(), pool)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Routes())
	t.Cleanup(srv.Close)

	return srv
}

func run(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRoot()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestBookCommand(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, srv.URL, "book", "5")
	require.NoError(t, err)
	assert.Equal(t, "Seats 1, 2, 3, 4, 5 successfully booked!\n", out)

	out, err = run(t, srv.URL, "book", "7")
	require.NoError(t, err)
	assert.Equal(t, "Seats 8, 9, 10, 11, 12, 13, 14 successfully booked!\n", out)
}

func TestBookCommandErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "not a number",
			args:    []string{"book", "five"},
			wantErr: `seat count must be a number: "five"`,
		},
		{
			name:    "out of range",
			args:    []string{"book", "8"},
			wantErr: "you can only book between 1 and 7 seats (status 422)",
		},
		{
			name:    "zero seats",
			args:    []string{"book", "0"},
			wantErr: "you can only book between 1 and 7 seats (status 422)",
		},
		{
			name:    "missing argument",
			args:    []string{"book"},
			wantErr: "accepts 1 arg(s), received 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, srv.URL, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestShowCommand(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, srv.URL, "show")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, domain.DefaultRows+3)

	assert.Equal(t, " 0 |   1.   2.   3.   4.   5.   6.   7.", lines[0])
	assert.Equal(t, "11 |  78.  79.  80r", lines[11])
	assert.Equal(t, "Vacant: 79  Booked: 0  Reserved: 1  Total: 80", lines[13])
	assert.Equal(t, "Booked Seats: None", lines[14])

	_, err = run(t, srv.URL, "book", "3")
	require.NoError(t, err)

	out, err = run(t, srv.URL, "show")
	require.NoError(t, err)

	assert.Contains(t, out, " 0 |   1x   2x   3x   4.   5.   6.   7.\n")
	assert.Contains(t, out, "Booked Seats: 1, 2, 3\n")
}

func TestResetCommand(t *testing.T) {
	srv := newTestServer(t)

	_, err := run(t, srv.URL, "book", "4")
	require.NoError(t, err)

	out, err := run(t, srv.URL, "reset")
	require.NoError(t, err)
	assert.Equal(t, "All seats have been reset.\n", out)

	out, err = run(t, srv.URL, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Vacant: 79  Booked: 0  Reserved: 1  Total: 80\n")
	assert.Contains(t, out, "Booked Seats: None\n")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "http://localhost:0", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "seatctl "))
}

func TestJoinSeats(t *testing.T) {
	assert.Equal(t, "None", joinSeats(nil))
	assert.Equal(t, "6, 7, 14", joinSeats([]int{6, 7, 14}))
}
