// Package conf loads process settings from environment variables.
package conf

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings holds everything that is not part of a game configuration.
type Settings struct {
	ConfigDir string `envconfig:"SLOT_CONFIG_DIR" default:"configs"`
	LogLevel  string `envconfig:"SLOT_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"SLOT_LOG_FORMAT" default:"console"` // console | json
	// 0 draws from crypto/rand; anything else seeds a reproducible source
	Seed uint64 `envconfig:"SLOT_SEED" default:"0"`
}

func (s *Settings) Validate() error {
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("SLOT_LOG_LEVEL: %w", err)
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("SLOT_LOG_FORMAT must be console or json, got %q", s.LogFormat)
	}
	return nil
}

// Load reads the environment into Settings.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewLogger builds the process logger. Console output uses the development
// encoder, json the production one; both write to stderr.
func (s *Settings) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	var cfg zap.Config
	if s.LogFormat == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
