// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pion/logging"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of a Provider configuration.
//
//	default_name: checkout
//	store: request
//	log_level: debug
//	storage_capacity: 500
type FileConfig struct {
	DefaultName     string    `yaml:"default_name"`
	Store           StoreMode `yaml:"store"`
	LogLevel        string    `yaml:"log_level"`
	StorageCapacity int       `yaml:"storage_capacity"`
}

// ParseConfig decodes a YAML configuration. Unknown keys are rejected and
// empty input yields the zero FileConfig.
func ParseConfig(r io.Reader) (*FileConfig, error) {
	config := &FileConfig{}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", errFailedToParse, err) //nolint:errorlint
	}

	return config, nil
}

// LoadConfigFile reads and decodes the YAML configuration at path.
func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", errFailedToReadConfig, path, err) //nolint:errorlint
	}
	defer func() {
		_ = f.Close()
	}()

	return ParseConfig(f)
}

// LoggerFactory builds the logger factory for the configured level. An
// empty level keeps the pion/logging default.
func (c *FileConfig) LoggerFactory() (logging.LoggerFactory, error) {
	loggerFactory := logging.NewDefaultLoggerFactory()
	if c.LogLevel == "" {
		return loggerFactory, nil
	}

	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	loggerFactory.DefaultLogLevel = level

	return loggerFactory, nil
}

// ProviderConfig converts c into a ProviderConfig backed by a
// DefaultEngine and a MemoryStorage. The storage is returned as well so
// callers can read saved sessions back.
func (c *FileConfig) ProviderConfig() (ProviderConfig, *MemoryStorage, error) {
	loggerFactory, err := c.LoggerFactory()
	if err != nil {
		return ProviderConfig{}, nil, err
	}

	store, err := NewStore(c.Store)
	if err != nil {
		return ProviderConfig{}, nil, err
	}

	storage, err := NewMemoryStorage(c.StorageCapacity)
	if err != nil {
		return ProviderConfig{}, nil, err
	}

	return ProviderConfig{
		DefaultName: c.DefaultName,
		Store:       store,
		Engine: NewDefaultEngine(DefaultEngineConfig{
			Storage:       storage,
			LoggerFactory: loggerFactory,
		}),
		LoggerFactory: loggerFactory,
	}, storage, nil
}

func parseLogLevel(level string) (logging.LogLevel, error) {
	switch strings.ToLower(level) {
	case "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("%w: %q", errUnknownLogLevel, level)
	}
}
