package commands

import (
	"fmt"

	"github.com/xmh0511/byte-aes/internal/pkg/config"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"
)

// setupLogger logs to stderr so stdout only carries command output
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeStderr,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
