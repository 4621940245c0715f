package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilPointer is returned when Load receives a nil destination.
var ErrNilPointer = errors.New("config: nil pointer provided")

// ErrParsing is returned when the environment cannot be parsed into the
// destination struct.
var ErrParsing = errors.New("config: failed to parse environment")

var dotenvOnce sync.Once

// Load parses environment variables into v based on its `env` field tags.
// On first use it attempts to load a .env file from the working directory;
// a missing file is not an error.
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return fmt.Errorf("%w: %v", ErrParsing, err)
	}
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any]() T {
	var v T
	if err := Load(&v); err != nil {
		panic(err)
	}
	return v
}
