package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyLength is returned when key material is not exactly KeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrMalformedLength is returned when a ciphertext length is not a multiple of BlockSize.
	ErrMalformedLength = errors.New("malformed ciphertext length")

	// ErrEmptyInput is returned when there is nothing to unpad.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidPadding is returned when the trailing padding byte cannot have been produced by Pad.
	ErrInvalidPadding = errors.New("invalid padding")
)

// PaddingError reports the trailing byte that failed padding validation.
// It matches ErrInvalidPadding with errors.Is.
type PaddingError struct {
	Value byte
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("invalid encrypted data, the padding number cannot be %d", e.Value)
}

// Is reports whether target is ErrInvalidPadding.
func (e *PaddingError) Is(target error) bool {
	return target == ErrInvalidPadding
}
