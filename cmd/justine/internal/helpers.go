package internal

import (
	"fmt"
	"io"

	"github.com/RogueDynamite/Justine/internal/config"
	"github.com/RogueDynamite/Justine/internal/logger"
)

// EnvFile is bound to the root --env-file flag.
var EnvFile string

func LoadConfig() (*config.Config, error) {
	var files []string
	if EnvFile != "" {
		files = append(files, EnvFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// SetupLogging configures the process logger from cfg. Close the returned
// closer on exit to flush the log file.
func SetupLogging(cfg *config.Config) (io.Closer, error) {
	return logger.Configure(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
}
