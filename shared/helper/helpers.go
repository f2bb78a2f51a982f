package helper

import (
	"fmt"
)

// GetTypedValueOf runs a getter and asserts its result to T.
// Getter errors are wrapped; a result of another type is an error too.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// GetTypedValueOf2 is the comma-ok variant, for getters shaped like sync.Map.Load.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
