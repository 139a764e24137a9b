package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CryptorHandler defines the interface for stateless encrypt and decrypt requests
type CryptorHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cryptorHandler struct {
	cryptor crypto.BlockCryptor
	logger  logger.Logger
}

// NewCryptorHandler creates a new CryptorHandler
func NewCryptorHandler(cryptor crypto.BlockCryptor, logger logger.Logger) CryptorHandler {
	return &cryptorHandler{
		cryptor: cryptor,
		logger:  logger,
	}
}

// Encrypt handles the POST request to encrypt base64 encoded data
// @Summary Encrypt data
// @Description Pad the data and encrypt every 16-byte block independently with the configured AES-256 key.
// @Tags Cryptor
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Plaintext"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cryptorHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	plaintext, err := base64.StdEncoding.DecodeString(request.Data)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("data is not valid base64: %v", err.Error()))
		return
	}

	ciphertext := handler.cryptor.Encrypt(plaintext)

	ctx.JSON(http.StatusOK, EncryptResponse{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Blocks:     len(ciphertext) / crypto.BlockSize,
	})
}

// Decrypt handles the POST request to decrypt base64 encoded ciphertext
// @Summary Decrypt ciphertext
// @Description Decrypt every block independently and strip the padding. Malformed or tampered input is rejected.
// @Tags Cryptor
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cryptorHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(request.Ciphertext)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("ciphertext is not valid base64: %v", err.Error()))
		return
	}

	plaintext, err := handler.cryptor.Decrypt(ciphertext)
	if err != nil {
		handler.logger.Warn("Rejected ciphertext: ", err)
		writeError(ctx, statusFor(err), fmt.Sprintf("could not decrypt: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{
		Data: base64.StdEncoding.EncodeToString(plaintext),
	})
}
