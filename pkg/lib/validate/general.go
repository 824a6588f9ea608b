package validate

import (
	"fmt"
	"reflect"
	"strings"
)

// createError builds the error returned by every helper in this package.
func createError(msg string, args ...any) error {
	return fmt.Errorf(msg, args...)
}

// NotNil checks if the provided value is not nil.
// It returns an error if the value is nil, using the provided message and arguments.
func NotNil(value any, msg string, args ...any) error {
	if value == nil {
		return createError(msg, args...)
	}
	// a non-nil interface can still wrap a nil pointer, chan, map, slice or func
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func:
		if v.IsNil() {
			return createError(msg, args...)
		}
	}
	return nil
}

// IsNotNil is an alias of NotNil.
func IsNotNil(value any, msg string, args ...any) error {
	return NotNil(value, msg, args...)
}

// IsBlank checks if the provided string is empty or contains only whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsNotBlank checks if the provided string is not empty and contains non-whitespace characters.
func IsNotBlank(value string) bool {
	return !IsBlank(value)
}

// ContainsNull checks if the provided string contains a null character.
func ContainsNull(value string) bool {
	return strings.ContainsRune(value, '\x00')
}

// NoSpaces checks that the provided string contains no whitespace.
// It returns an error if it does, using the provided message and arguments.
func NoSpaces(value string, msg string, args ...any) error {
	if strings.ContainsAny(value, " \t\n\r") {
		return createError(msg, args...)
	}
	return nil
}
