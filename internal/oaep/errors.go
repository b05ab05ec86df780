package oaep

import "errors"

var (
	// ErrMessageTooLong is returned when a message exceeds the capacity of
	// the modulus it is being encoded for.
	ErrMessageTooLong = errors.New("message too long for OAEP encoding")

	// ErrInvalidInputLength is returned when an encoded message or modulus
	// size cannot hold a well-formed OAEP structure.
	ErrInvalidInputLength = errors.New("invalid OAEP input length")

	// ErrInvalidPadding is returned when a decoded data block fails the
	// label hash check or carries no message separator.
	ErrInvalidPadding = errors.New("invalid OAEP padding")
)
