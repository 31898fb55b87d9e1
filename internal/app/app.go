package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
	appmiddleware "github.com/metinatakli/train-seat-reservation/internal/middleware"
	"github.com/metinatakli/train-seat-reservation/internal/seatpool"
	appvalidator "github.com/metinatakli/train-seat-reservation/internal/validator"
	"github.com/metinatakli/train-seat-reservation/internal/vcs"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "train-seat-reservation"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	seatPool  domain.SeatPool
	metrics   *bookingMetrics
}

func NewApp(cfg Config, logger *slog.Logger, validator *validator.Validate, seatPool domain.SeatPool) (*Application, error) {
	metrics, err := newBookingMetrics(seatPool)
	if err != nil {
		return nil, fmt.Errorf("failed to register booking metrics: %w", err)
	}

	return &Application{
		config:    cfg,
		logger:    logger,
		validator: validator,
		seatPool:  seatPool,
		metrics:   metrics,
	}, nil
}

func Run() error {
	err := loadEnvFile(".env")
	if err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, displayVersion, err := LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	validator := appvalidator.NewValidator()

	err = validator.Struct(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := NewSeatPool(cfg.Pool)
	if err != nil {
		return err
	}

	app, err := NewApp(cfg, logger, validator, pool)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(textHandler, otelslog.NewHandler(serviceName)))
	}

	app.logger.Info("seat pool ready",
		"rows", pool.Layout().Rows(),
		"seats", pool.Layout().TotalSeats(),
		"reserved", len(cfg.Pool.Reserved),
		"max_per_request", pool.MaxPerRequest(),
	)

	return app.serve()
}

func NewSeatPool(cfg PoolConfig) (*seatpool.Pool, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}

	return seatpool.New(layout,
		seatpool.WithMaxPerRequest(cfg.MaxPerRequest),
		seatpool.WithReserved(cfg.Reserved...),
	)
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(appmiddleware.RequestLogger(app.logger))
	r.Use(appmiddleware.RecoverPanic(app.logger))
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.GetHealth)
		r.Get("/seats", app.GetSeatMap)

		r.Get("/bookings", app.ListBookingsHandler)
		r.Post("/bookings", app.BookSeatsHandler)
		r.Delete("/bookings", app.ResetBookingsHandler)
	})

	return r
}
