// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv (dotenv files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type is
// parsed once and cached for the life of the process; ResetCache clears the
// cache in tests.
//
// # Usage
//
//	type Config struct {
//	    Color  string `env:"DOOR_COLOR" envDefault:"green"`
//	    Script string `env:"DOOR_SCRIPT"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Load reads the default ".env" file on first use if present. Call LoadEnv
// beforehand to read specific files instead.
//
// # Errors
//
// Parsing failures are joined with ErrParsingConfig, so callers can test with
// errors.Is while still seeing the underlying env error.
package config
