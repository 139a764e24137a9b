// Package keymaterial resolves the raw bytes of a key from a literal, a file or an environment variable.
// No derivation or decoding is applied; length validation is left to crypto.NewKey.
package keymaterial

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xmh0511/byte-aes/internal/pkg/config"
)

// FromString returns the UTF-8 bytes of s.
func FromString(s string) []byte {
	return []byte(s)
}

// FromFile reads the key file and trims a single trailing line ending, as left by most editors and `echo`.
func FromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	return data, nil
}

// FromEnv reads the key from the named environment variable. An unset variable is an error.
func FromEnv(name string) ([]byte, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil, fmt.Errorf("environment variable %s is not set", name)
	}
	return []byte(value), nil
}

// Resolve loads the key material described by the settings.
func Resolve(settings *config.CryptorSettings) ([]byte, error) {
	switch settings.KeySource {
	case config.KeySourceLiteral:
		return FromString(settings.Key), nil
	case config.KeySourceFile:
		return FromFile(settings.KeyFile)
	case config.KeySourceEnv:
		return FromEnv(settings.KeyEnv)
	default:
		return nil, fmt.Errorf("unsupported key source: %s", settings.KeySource)
	}
}
