package quillsign

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrKeyGeneration is returned when key-pair generation exhausts its
	// retry budget or is asked for an unusable key size.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyLoad is returned when a key file is missing or malformed.
	ErrKeyLoad = errors.New("malformed key file")

	// ErrInvalidPadding is returned by Verify when the exponentiated
	// signature does not carry a well-formed OAEP structure.
	ErrInvalidPadding = errors.New("invalid signature padding")

	// ErrInvalidEnvelope is returned when a signed file does not follow the
	// delimited envelope layout.
	ErrInvalidEnvelope = errors.New("malformed signed-file envelope")
)

// KeyLoadError reports a key file that could not be read or parsed.
type KeyLoadError struct {
	Path string
	Err  error
}

func (e *KeyLoadError) Error() string {
	return fmt.Sprintf("load key %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyLoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyLoadError) Is(target error) bool {
	return target == ErrKeyLoad
}

// EnvelopeError reports a signed file that does not parse as an envelope.
type EnvelopeError struct {
	Message string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("parse envelope: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *EnvelopeError) Is(target error) bool {
	return target == ErrInvalidEnvelope
}
