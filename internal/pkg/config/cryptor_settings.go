package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
)

// Key source constants
const (
	KeySourceLiteral = "literal"
	KeySourceFile    = "file"
	KeySourceEnv     = "env"
)

// DefaultKeyEnv is the environment variable consulted when no other key source is configured
const DefaultKeyEnv = "BYTE_AES_KEY"

// CryptorSettings says where the 32-byte key comes from and how block work is parallelized
type CryptorSettings struct {
	KeySource         string `mapstructure:"key_source" validate:"required,oneof=literal file env"`
	Key               string `mapstructure:"key" validate:"required_if=KeySource literal"`
	KeyFile           string `mapstructure:"key_file" validate:"required_if=KeySource file"`
	KeyEnv            string `mapstructure:"key_env" validate:"required_if=KeySource env"`
	Workers           int    `mapstructure:"workers" validate:"min=0,max=1024"`
	ParallelThreshold int    `mapstructure:"parallel_threshold" validate:"min=0"`
}

// Validate checks that all fields in CryptorSettings are valid
func (s *CryptorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CryptorSettings: %w", err)
	}
	return nil
}

// Options converts the tuning fields to cryptor options
func (s *CryptorSettings) Options() crypto.CryptorOptions {
	return crypto.CryptorOptions{
		Workers:           s.Workers,
		ParallelThreshold: s.ParallelThreshold,
	}
}
