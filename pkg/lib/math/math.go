package math

import (
	"golang.org/x/exp/constraints"
)

// Number is a constraint that permits any numeric type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the largest of the given values.
func Max[T constraints.Ordered](values ...T) T {
	max := values[0]
	for _, value := range values[1:] {
		if value > max {
			max = value
		}
	}
	return max
}

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](values ...T) T {
	min := values[0]
	for _, value := range values[1:] {
		if value < min {
			min = value
		}
	}
	return min
}
