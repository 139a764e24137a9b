//go:build unit
// +build unit

package byteaes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "c4ca4238a0b923820dcc509a6f75849b"

func TestNew_KeyLength(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		shouldErr bool
	}{
		{"32 bytes", testKey, false},
		{"empty", "", true},
		{"1 byte", "a", true},
		{"31 bytes", testKey[:31], true},
		{"33 bytes", testKey + "a", true},
		{"64 bytes", testKey + testKey, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.key)
			if tt.shouldErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidKeyLength))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCryptor_Scenarios(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	short := c.Encrypt([]byte{1, 0, 0, 1})
	assert.Len(t, short, BlockSize)

	plaintext := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 12, 13, 14, 13, 0}
	long := c.Encrypt(plaintext)
	assert.Len(t, long, 2*BlockSize)

	got, err := c.Decrypt(long)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestCryptor_EmptyPlaintext(t *testing.T) {
	c, err := NewFromBytes([]byte(testKey))
	require.NoError(t, err)

	ciphertext := c.Encrypt(nil)
	require.Len(t, ciphertext, BlockSize)

	got, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCryptor_Strings(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	s, err := c.DecryptString(c.EncryptString("héllo, wörld"))
	require.NoError(t, err)
	assert.Equal(t, "héllo, wörld", s)

	_, err = c.DecryptString(make([]byte, 15))
	assert.ErrorIs(t, err, ErrMalformedLength)
}

func TestCryptor_Errors(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	_, err = c.Decrypt(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = c.Decrypt(make([]byte, 17))
	assert.ErrorIs(t, err, ErrMalformedLength)
}

func TestCryptor_ParallelMatchesSequential(t *testing.T) {
	sequential, err := New(testKey, WithParallelThreshold(0))
	require.NoError(t, err)
	parallel, err := New(testKey, WithParallelThreshold(2), WithWorkers(4))
	require.NoError(t, err)

	plaintext := bytes.Repeat([]byte("0123456789abcdef!"), 100)

	assert.Equal(t, sequential.Encrypt(plaintext), parallel.Encrypt(plaintext))
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(testKey, WithWorkers(-1))
	require.Error(t, err)
}

func TestPadUnpad(t *testing.T) {
	blocks := Pad([]byte{1, 2, 3})
	require.Len(t, blocks, 1)
	assert.Equal(t, byte(13), blocks[0][BlockSize-1])

	data, err := Unpad(blocks)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	var bad Block
	bad[BlockSize-1] = 17
	_, err = Unpad([]Block{bad})

	var paddingErr *PaddingError
	require.True(t, errors.As(err, &paddingErr))
	assert.Equal(t, byte(17), paddingErr.Value)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}
