package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load receives a nil target.
var ErrNilConfig = errors.New("config.nil_target")

// ErrParsingFailed wraps env parsing failures.
var ErrParsingFailed = errors.New("config.parsing_failed")

var loadDotEnv sync.Once

// Load fills the struct from environment variables using `env` tags. The
// default .env file is loaded once per process if present; a missing file is
// not an error.
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilConfig
	}

	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingFailed, err)
	}
	return nil
}

// MustLoad is Load that panics on failure, for startup paths where a bad
// environment should stop the process.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
