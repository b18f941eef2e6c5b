package weather

import "errors"

var (
	// ErrInvalidNumericInput is returned when a value expected to be numeric cannot be parsed.
	ErrInvalidNumericInput = errors.New("invalid numeric input")

	// ErrInvalidDateFormat is returned when a timestamp is not valid ISO-8601.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrMalformedRow is returned when a row does not have the (date, low, high) shape.
	ErrMalformedRow = errors.New("malformed row")
)
