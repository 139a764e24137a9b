package v1

import (
	"errors"
	"net/http"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, blobs.ErrBlobNotFound):
		return http.StatusNotFound
	case errors.Is(err, crypto.ErrMalformedLength),
		errors.Is(err, crypto.ErrInvalidPadding),
		errors.Is(err, crypto.ErrEmptyInput),
		errors.Is(err, crypto.ErrInvalidKeyLength):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}
