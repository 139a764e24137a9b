package blobs

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
)

// ErrBlobNotFound is returned when no sealed blob exists for an ID
var ErrBlobNotFound = errors.New("blob not found")

// BlobMeta entity describing a sealed blob. The ciphertext itself is stored next to it.
type BlobMeta struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	Name            string    `validate:"required,min=1,max=255"`
	PlainSize       int64     `validate:"min=0"`
	CipherSize      int64     `validate:"required,min=16"`
	Algorithm       string    `validate:"required,oneof=AES-256"`
	Mode            string    `validate:"required,oneof=independent-block"`
}

// Validate for validating BlobMeta struct
func (b *BlobMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(b)
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

	if b.CipherSize%crypto.BlockSize != 0 {
		return fmt.Errorf("validation failed: cipher size %d is not a multiple of %d", b.CipherSize, crypto.BlockSize)
	}

	return nil
}

// BlobMetaQuery filters and pages a blob listing
type BlobMetaQuery struct {
	Name      string `validate:"omitempty,max=255"`
	Limit     int    `validate:"omitempty,min=1,max=1000"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=name date_time_created plain_size"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewBlobMetaQuery returns an empty query
func NewBlobMetaQuery() *BlobMetaQuery {
	return &BlobMetaQuery{}
}

// Validate for validating BlobMetaQuery struct
func (q *BlobMetaQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
