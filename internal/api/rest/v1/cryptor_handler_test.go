//go:build unit
// +build unit

package v1

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/infrastructure/cryptography"
	"github.com/xmh0511/byte-aes/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyMaterial = "c4ca4238a0b923820dcc509a6f75849b"

func setupCryptorHandler(t *testing.T) CryptorHandler {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	cryptor, err := cryptography.NewAES256CryptorFromString(testKeyMaterial, log, crypto.DefaultCryptorOptions())
	require.NoError(t, err)

	return NewCryptorHandler(cryptor, log)
}

func postJSON(t *testing.T, handlerFunc gin.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handlerFunc(c)
	return w
}

func TestCryptorHandler_EncryptDecrypt_RoundTrip(t *testing.T) {
	handler := setupCryptorHandler(t)
	plaintext := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 12, 13, 14, 13, 0}

	w := postJSON(t, handler.Encrypt, EncryptRequest{Data: base64.StdEncoding.EncodeToString(plaintext)})
	require.Equal(t, http.StatusOK, w.Code)

	var encrypted EncryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))
	assert.Equal(t, 2, encrypted.Blocks)

	w = postJSON(t, handler.Decrypt, DecryptRequest{Ciphertext: encrypted.Ciphertext})
	require.Equal(t, http.StatusOK, w.Code)

	var decrypted DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decrypted))

	got, err := base64.StdEncoding.DecodeString(decrypted.Data)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestCryptorHandler_Encrypt_EmptyData(t *testing.T) {
	handler := setupCryptorHandler(t)

	w := postJSON(t, handler.Encrypt, EncryptRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var encrypted EncryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))
	assert.Equal(t, 1, encrypted.Blocks)

	ciphertext, err := base64.StdEncoding.DecodeString(encrypted.Ciphertext)
	require.NoError(t, err)
	assert.Len(t, ciphertext, crypto.BlockSize)

	w = postJSON(t, handler.Decrypt, DecryptRequest{Ciphertext: encrypted.Ciphertext})
	require.Equal(t, http.StatusOK, w.Code)

	var decrypted DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decrypted))
	assert.Empty(t, decrypted.Data)
}

func TestCryptorHandler_Encrypt_InvalidBody(t *testing.T) {
	handler := setupCryptorHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCryptorHandler_Encrypt_InvalidBase64(t *testing.T) {
	handler := setupCryptorHandler(t)

	w := postJSON(t, handler.Encrypt, EncryptRequest{Data: "***"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCryptorHandler_Decrypt_MalformedLength(t *testing.T) {
	handler := setupCryptorHandler(t)

	for _, size := range []int{15, 17} {
		ciphertext := base64.StdEncoding.EncodeToString(make([]byte, size))
		w := postJSON(t, handler.Decrypt, DecryptRequest{Ciphertext: ciphertext})

		assert.Equal(t, http.StatusBadRequest, w.Code, "size %d", size)
		assert.Contains(t, w.Body.String(), "could not decrypt")
	}
}

func TestCryptorHandler_Decrypt_InvalidPadding(t *testing.T) {
	handler := setupCryptorHandler(t)

	block, err := aes.NewCipher([]byte(testKeyMaterial))
	require.NoError(t, err)

	forged := make([]byte, crypto.BlockSize)
	forged[crypto.BlockSize-1] = 0xF0
	block.Encrypt(forged, forged)

	w := postJSON(t, handler.Decrypt, DecryptRequest{Ciphertext: base64.StdEncoding.EncodeToString(forged)})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "padding number cannot be 240")
}

func TestCryptorHandler_Decrypt_MissingCiphertext(t *testing.T) {
	handler := setupCryptorHandler(t)

	w := postJSON(t, handler.Decrypt, DecryptRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
