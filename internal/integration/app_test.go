package integration_test

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/metinatakli/train-seat-reservation/internal/app"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
	"github.com/metinatakli/train-seat-reservation/internal/seatpool"
	appvalidator "github.com/metinatakli/train-seat-reservation/internal/validator"
)

type TestApp struct {
	App     *app.Application
	Pool    *seatpool.Pool
	Handler http.Handler
}

func defaultConfig() app.Config {
	return app.Config{
		Port: 3000,
		Env:  "test",
		Pool: app.PoolConfig{
			Rows:           domain.DefaultRows,
			NarrowFromRow:  domain.DefaultNarrowFromRow,
			WideCapacity:   domain.DefaultWideCapacity,
			NarrowCapacity: domain.DefaultNarrowCapacity,
			MaxPerRequest:  domain.DefaultMaxPerRequest,
		},
	}
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := appvalidator.NewValidator()

	err := validator.Struct(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := app.NewSeatPool(cfg.Pool)
	if err != nil {
		return nil, err
	}

	application, err := app.NewApp(cfg, logger, validator, pool)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:     application,
		Pool:    pool,
		Handler: application.Routes(),
	}, nil
}
