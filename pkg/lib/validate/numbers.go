package validate

import (
	"github.com/shoal-project/shoal/pkg/lib/math"
)

// IsGreaterThanZero returns an error if the value is not greater than zero.
func IsGreaterThanZero[T math.Number](value T, msg string, args ...any) error {
	if value <= 0 {
		return createError(msg, args...)
	}
	return nil
}

// IsGreaterOrEqualToZero returns an error if the value is less than zero.
func IsGreaterOrEqualToZero[T math.Number](value T, msg string, args ...any) error {
	if value < 0 {
		return createError(msg, args...)
	}
	return nil
}

// IsGreaterThan returns an error if the value is not greater than the other value.
func IsGreaterThan[T math.Number](value, other T, msg string, args ...any) error {
	if value <= other {
		return createError(msg, args...)
	}
	return nil
}

// IsGreaterOrEqual returns an error if the value is less than the other value.
func IsGreaterOrEqual[T math.Number](value, other T, msg string, args ...any) error {
	if value < other {
		return createError(msg, args...)
	}
	return nil
}

// IsLessThan returns an error if the value is not less than the other value.
func IsLessThan[T math.Number](value, other T, msg string, args ...any) error {
	if value >= other {
		return createError(msg, args...)
	}
	return nil
}

// IsLessOrEqual returns an error if the value is greater than the other value.
func IsLessOrEqual[T math.Number](value, other T, msg string, args ...any) error {
	if value > other {
		return createError(msg, args...)
	}
	return nil
}
