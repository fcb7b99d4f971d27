package driver

import (
	"errors"
	"fmt"

	"github.com/m-manu/bucket-set/hashset"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config controls a run
type Config struct {
	// Count is number of random values to generate when no values are supplied
	Count int
	// Capacity is the initial number of buckets
	Capacity int
	Seed     int64
	// Verify cross-checks the set against a reference set after inserting
	Verify bool
}

// DefaultConfig returns the configuration of the classic ten million insertions run
func DefaultConfig() Config {
	return Config{
		Count:    10_000_000,
		Capacity: hashset.DefaultCapacity,
		Seed:     1,
	}
}

// Validate checks that configuration values are within range
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	return nil
}
