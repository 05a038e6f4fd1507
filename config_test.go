// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package profiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		config, err := ParseConfig(strings.NewReader(`
default_name: checkout
store: request
log_level: debug
storage_capacity: 5
`))
		require.NoError(t, err)
		assert.Equal(t, &FileConfig{
			DefaultName:     "checkout",
			Store:           StoreModeRequest,
			LogLevel:        "debug",
			StorageCapacity: 5,
		}, config)
	})

	t.Run("Empty", func(t *testing.T) {
		config, err := ParseConfig(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, &FileConfig{}, config)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := ParseConfig(strings.NewReader("stack: true\n"))
		assert.ErrorIs(t, err, errFailedToParse)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseConfig(strings.NewReader("default_name: [unterminated\n"))
		assert.ErrorIs(t, err, errFailedToParse)
	})
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_name: from-file\n"), 0o600))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", config.DefaultName)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, errFailedToReadConfig)
}

func TestFileConfigLoggerFactory(t *testing.T) {
	for level, expected := range map[string]logging.LogLevel{
		"off":   logging.LogLevelDisabled,
		"error": logging.LogLevelError,
		"WARN":  logging.LogLevelWarn,
		"info":  logging.LogLevelInfo,
		"debug": logging.LogLevelDebug,
		"trace": logging.LogLevelTrace,
	} {
		loggerFactory, err := (&FileConfig{LogLevel: level}).LoggerFactory()
		require.NoError(t, err, level)

		defaultFactory, ok := loggerFactory.(*logging.DefaultLoggerFactory)
		require.True(t, ok)
		assert.Equal(t, expected, defaultFactory.DefaultLogLevel, level)
	}

	_, err := (&FileConfig{LogLevel: "loud"}).LoggerFactory()
	assert.ErrorIs(t, err, errUnknownLogLevel)
}

func TestFileConfigProviderConfig(t *testing.T) {
	providerConfig, storage, err := (&FileConfig{
		DefaultName:     "configured",
		Store:           StoreModeRequest,
		StorageCapacity: 1,
	}).ProviderConfig()
	require.NoError(t, err)
	assert.IsType(t, &RequestStore{}, providerConfig.Store)

	p, err := NewProvider(providerConfig)
	require.NoError(t, err)

	ctx, prof := p.Start(context.Background(), "")
	assert.Equal(t, "configured", prof.Name())
	assert.NoError(t, <-p.StopAsync(ctx, true))
	assert.Equal(t, []*Profiler{prof}, storage.List())

	_, _, err = (&FileConfig{Store: "global"}).ProviderConfig()
	assert.ErrorIs(t, err, errUnknownStoreMode)

	_, _, err = (&FileConfig{StorageCapacity: -1}).ProviderConfig()
	assert.ErrorIs(t, err, errInvalidCapacity)
}
