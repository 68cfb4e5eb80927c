package assembly

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig marks a configuration the simulation refuses to run.
var ErrInvalidConfig = errors.New("assembly: invalid configuration")

// ConfigError wraps ErrInvalidConfig with the offending field.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s, got %g", ErrInvalidConfig, e.Field, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// mustBePositive rejects zero, negative, NaN and +Inf.
func mustBePositive(field string, v float64) error {
	if v > 0 && !math.IsInf(v, 1) {
		return nil
	}
	return &ConfigError{Field: field, Value: v, Reason: "must be positive and finite"}
}

func mustBeFinite(field string, v float64) error {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		return nil
	}
	return &ConfigError{Field: field, Value: v, Reason: "must be finite"}
}
