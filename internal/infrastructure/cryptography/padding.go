package cryptography

import (
	"fmt"

	"github.com/xmh0511/byte-aes/internal/domain/crypto"
)

// Pad appends PKCS#7-style padding to data and splits it into blocks.
// Block aligned input, the empty input included, gets a whole extra block of sixteen 0x10 bytes,
// so every padded buffer carries at least one padding byte.
func Pad(data []byte) []crypto.Block {
	remainder := len(data) % crypto.BlockSize
	padLen := crypto.BlockSize - remainder
	full := len(data) / crypto.BlockSize

	blocks := make([]crypto.Block, full+1)
	for i := 0; i < full; i++ {
		copy(blocks[i][:], data[i*crypto.BlockSize:])
	}

	last := &blocks[full]
	copy(last[:], data[full*crypto.BlockSize:])
	for i := remainder; i < crypto.BlockSize; i++ {
		last[i] = byte(padLen)
	}

	return blocks
}

// Unpad joins the blocks and strips the padding announced by the last byte v.
//
// v == 16 requires the final sixteen bytes to all be 16. For 1 <= v < 16 only the last byte is
// inspected and v bytes are dropped; a corrupted or wrong-key buffer whose last byte happens to fall
// in that range is therefore indistinguishable from valid data. Any other v yields a *PaddingError.
func Unpad(blocks []crypto.Block) ([]byte, error) {
	buf := Join(blocks)
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: the number of bytes of the encrypted data shall be at least %d even if the original data is empty", crypto.ErrEmptyInput, crypto.BlockSize)
	}

	v := buf[len(buf)-1]
	switch {
	case v == crypto.FullPaddingByte:
		if !isFullPaddingBlock(buf[len(buf)-crypto.BlockSize:]) {
			return nil, &crypto.PaddingError{Value: v}
		}
		return buf[:len(buf)-crypto.BlockSize], nil
	case v > 0 && v < crypto.FullPaddingByte:
		return buf[:len(buf)-int(v)], nil
	default:
		return nil, &crypto.PaddingError{Value: v}
	}
}

// Split cuts block aligned data into blocks. Misaligned data yields crypto.ErrMalformedLength.
func Split(data []byte) ([]crypto.Block, error) {
	if len(data)%crypto.BlockSize != 0 {
		return nil, fmt.Errorf("%w: the number of bytes of the encrypted data shall be multiple of %d, got %d", crypto.ErrMalformedLength, crypto.BlockSize, len(data))
	}

	blocks := make([]crypto.Block, len(data)/crypto.BlockSize)
	for i := range blocks {
		copy(blocks[i][:], data[i*crypto.BlockSize:])
	}
	return blocks, nil
}

// Join concatenates blocks in order.
func Join(blocks []crypto.Block) []byte {
	buf := make([]byte, 0, len(blocks)*crypto.BlockSize)
	for i := range blocks {
		buf = append(buf, blocks[i][:]...)
	}
	return buf
}

func isFullPaddingBlock(tail []byte) bool {
	for _, b := range tail {
		if b != crypto.FullPaddingByte {
			return false
		}
	}
	return true
}
