package model

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultHoldDuration is how long a press must be sustained to confirm.
	DefaultHoldDuration = 3 * time.Second
	// DefaultSamplingInterval keeps progress feedback smooth (<= 50ms).
	DefaultSamplingInterval = 40 * time.Millisecond
)

var (
	// ErrInvalidDuration indicates a non-positive hold duration.
	ErrInvalidDuration = errors.New("hold duration must be positive")
	// ErrInvalidInterval indicates a non-positive sampling interval.
	ErrInvalidInterval = errors.New("sampling interval must be positive")
)

// HoldConfig contains runtime settings for the hold-to-confirm state machine.
type HoldConfig struct {
	HoldDuration     time.Duration
	SamplingInterval time.Duration
	Disabled         bool
}

// DefaultHoldConfig returns the stock hold configuration.
func DefaultHoldConfig() HoldConfig {
	return HoldConfig{
		HoldDuration:     DefaultHoldDuration,
		SamplingInterval: DefaultSamplingInterval,
	}
}

// Validate reports contract violations in the configuration.
func (config HoldConfig) Validate() error {
	if config.HoldDuration <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidDuration, config.HoldDuration)
	}
	if config.SamplingInterval <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidInterval, config.SamplingInterval)
	}
	return nil
}
