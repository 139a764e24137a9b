package crypto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Key is the raw AES-256 key material. It is used as-is, no derivation is applied.
type Key [KeySize]byte

// Block is the unit consumed and produced by the block cipher primitive.
type Block [BlockSize]byte

// NewKey validates the key material and copies it into a Key.
func NewKey(material []byte) (Key, error) {
	var key Key
	if len(material) != KeySize {
		return key, fmt.Errorf("%w: the number of bytes of the key shall be %d, got %d", ErrInvalidKeyLength, KeySize, len(material))
	}
	copy(key[:], material)
	return key, nil
}

// ParseKey builds a Key from the UTF-8 bytes of s. The byte length counts, not the rune count.
func ParseKey(s string) (Key, error) {
	return NewKey([]byte(s))
}

// CryptorOptions tunes how a block cryptor spreads work over goroutines.
type CryptorOptions struct {
	// Workers caps concurrent block transforms. Zero means GOMAXPROCS.
	Workers int `mapstructure:"workers" validate:"min=0,max=1024"`
	// ParallelThreshold is the minimum number of blocks before workers are used. Zero disables parallelism.
	ParallelThreshold int `mapstructure:"parallel_threshold" validate:"min=0"`
}

// DefaultCryptorOptions returns options with GOMAXPROCS workers and DefaultParallelThreshold.
func DefaultCryptorOptions() CryptorOptions {
	return CryptorOptions{
		Workers:           0,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// Validate for validating CryptorOptions struct
func (o *CryptorOptions) Validate() error {
	validate := validator.New()

	err := validate.Struct(o)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
