package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xmh0511/byte-aes/internal/domain/blobs"
)

// EncryptRequest carries base64 encoded plaintext. An empty string encrypts the empty plaintext.
type EncryptRequest struct {
	Data string `json:"data" validate:"omitempty,base64"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateRequest(r)
}

// EncryptResponse carries base64 encoded ciphertext
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
	Blocks     int    `json:"blocks"`
}

// DecryptRequest carries base64 encoded ciphertext
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateRequest(r)
}

// DecryptResponse carries base64 encoded plaintext
type DecryptResponse struct {
	Data string `json:"data"`
}

// BlobMetaResponse describes a sealed blob
type BlobMetaResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	Name            string    `json:"name"`
	PlainSize       int64     `json:"plainSize"`
	CipherSize      int64     `json:"cipherSize"`
	Algorithm       string    `json:"algorithm"`
	Mode            string    `json:"mode"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

func newBlobMetaResponse(blobMeta *blobs.BlobMeta) BlobMetaResponse {
	return BlobMetaResponse{
		ID:              blobMeta.ID,
		DateTimeCreated: blobMeta.DateTimeCreated,
		Name:            blobMeta.Name,
		PlainSize:       blobMeta.PlainSize,
		CipherSize:      blobMeta.CipherSize,
		Algorithm:       blobMeta.Algorithm,
		Mode:            blobMeta.Mode,
	}
}

func validateRequest(request any) error {
	validate := validator.New()

	err := validate.Struct(request)
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
