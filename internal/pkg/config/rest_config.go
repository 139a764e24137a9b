package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
)

// EnvPrefix is prepended to every environment override, e.g. BYTE_AES_PORT or BYTE_AES_DATABASE_DSN
const EnvPrefix = "BYTE_AES"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Cryptor  CryptorSettings  `mapstructure:"cryptor"`
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Cryptor.Validate()
}

// InitializeRestConfig reads the YAML file at path, applies BYTE_AES_* environment overrides and validates the result.
// An empty path loads defaults and the environment only.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")

	v.SetDefault("cryptor.key_source", KeySourceEnv)
	v.SetDefault("cryptor.key", "")
	v.SetDefault("cryptor.key_file", "")
	v.SetDefault("cryptor.key_env", DefaultKeyEnv)
	v.SetDefault("cryptor.workers", 0)
	v.SetDefault("cryptor.parallel_threshold", crypto.DefaultParallelThreshold)
}
