package config

import (
	"fmt"
	"os"
	"time"

	"venue-booking/internal/domain/reservation"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream API URL, etc.)
// - default: Values common across all environments (timezone, booking hours, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Booking  BookingConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type UpstreamConfig struct {
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"UPSTREAM_API_KEY"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

type BookingConfig struct {
	CheckInHour      int    `envconfig:"BOOKING_CHECK_IN_HOUR" default:"15"`
	CheckOutHour     int    `envconfig:"BOOKING_CHECK_OUT_HOUR" default:"11"`
	MaxLookaheadDays int    `envconfig:"BOOKING_LOOKAHEAD_DAYS" default:"365"`
	TimeZone         string `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c BookingConfig) Policy() reservation.AvailabilityPolicy {
	return reservation.AvailabilityPolicy{
		CheckInHour:      c.CheckInHour,
		CheckOutHour:     c.CheckOutHour,
		MaxLookaheadDays: c.MaxLookaheadDays,
	}
}

func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c BookingConfig) Validate() error {
	if c.CheckInHour < 0 || c.CheckInHour > 23 {
		return fmt.Errorf("BOOKING_CHECK_IN_HOUR must be within 0-23, got %d", c.CheckInHour)
	}
	if c.CheckOutHour < 0 || c.CheckOutHour > 23 {
		return fmt.Errorf("BOOKING_CHECK_OUT_HOUR must be within 0-23, got %d", c.CheckOutHour)
	}
	if c.MaxLookaheadDays < 1 {
		return fmt.Errorf("BOOKING_LOOKAHEAD_DAYS must be positive, got %d", c.MaxLookaheadDays)
	}
	return nil
}

// LoadConfig reads an optional .env file (ENV_FILE, default ".env") and then
// the process environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:18080",
			APIKey:  "test-api-key",
			Timeout: 2 * time.Second,
		},
		Booking: BookingConfig{
			CheckInHour:      reservation.DefaultCheckInHour,
			CheckOutHour:     reservation.DefaultCheckOutHour,
			MaxLookaheadDays: reservation.DefaultMaxLookaheadDays,
			TimeZone:         "UTC",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
