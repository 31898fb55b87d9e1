package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/metinatakli/train-seat-reservation/internal/domain"
)

type Config struct {
	Port             int    `validate:"min=1,max=65535"`
	Env              string `validate:"oneof=dev staging prod test"`
	OtelCollectorUrl string
	Pool             PoolConfig
}

type PoolConfig struct {
	Rows           int   `validate:"min=1"`
	NarrowFromRow  int   `validate:"min=0"`
	WideCapacity   int   `validate:"min=1"`
	NarrowCapacity int   `validate:"min=1"`
	MaxPerRequest  int   `validate:"min=1"`
	Reserved       []int `validate:"unique,dive,min=1"`
}

// Layout builds the seat layout described by the config.
func (c PoolConfig) Layout() (domain.Layout, error) {
	return domain.NewLayout(c.Rows, domain.RowCapacity(c.NarrowFromRow, c.WideCapacity, c.NarrowCapacity))
}

// loadEnvFile reads a .env file from the working directory, if there is one.
// Variables already present in the environment win.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// LoadConfig parses command line flags. Flag defaults come from the
// environment so the server can be configured either way.
func LoadConfig(args []string) (Config, bool, error) {
	var cfg Config

	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", envInt("APP_PORT", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", envStr("APP_ENV", "dev"), "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envStr("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	fs.IntVar(&cfg.Pool.Rows, "seat-rows", envInt("SEAT_ROWS", domain.DefaultRows), "number of seat rows")
	fs.IntVar(&cfg.Pool.NarrowFromRow, "seat-narrow-from-row", envInt("SEAT_NARROW_FROM_ROW", domain.DefaultNarrowFromRow), "index of the first narrow row")
	fs.IntVar(&cfg.Pool.WideCapacity, "seat-wide-capacity", envInt("SEAT_WIDE_CAPACITY", domain.DefaultWideCapacity), "seats in a wide row")
	fs.IntVar(&cfg.Pool.NarrowCapacity, "seat-narrow-capacity", envInt("SEAT_NARROW_CAPACITY", domain.DefaultNarrowCapacity), "seats in a narrow row")
	fs.IntVar(&cfg.Pool.MaxPerRequest, "seat-max-per-request", envInt("SEAT_MAX_PER_REQUEST", domain.DefaultMaxPerRequest), "maximum seats per booking")

	reserved, err := parseSeatNumbers(envStr("SEAT_RESERVED", ""))
	if err != nil {
		return Config{}, false, fmt.Errorf("SEAT_RESERVED: %w", err)
	}
	cfg.Pool.Reserved = reserved

	fs.Func("seat-reserved", "comma separated seat numbers reserved up front", func(s string) error {
		numbers, err := parseSeatNumbers(s)
		if err != nil {
			return err
		}

		cfg.Pool.Reserved = numbers
		return nil
	})

	displayVersion := fs.Bool("version", false, "Display version and exit")

	err = fs.Parse(args)
	if err != nil {
		return Config{}, false, err
	}

	return cfg, *displayVersion, nil
}

func parseSeatNumbers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	numbers := make([]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid seat number %q", part)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
