// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` for reading `.env` files and
// `github.com/caarlos0/env/v11` for parsing the environment into structs.
// Every configuration type is parsed once and cached for the lifetime of the
// process; ResetCache clears the cache, which is mostly useful in tests.
//
// # Usage
//
//	type Config struct {
//		Output string        `env:"COOKIEFMT_OUTPUT" envDefault:"header"`
//		Cookie cookie.Config
//	}
//
//	var cfg Config
//	config.MustLoadEnv("deploy/.env")
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig and unreadable env files
// with ErrLoadingEnvFile, so callers can match them with errors.Is.
package config
