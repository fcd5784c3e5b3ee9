package config_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/Agurato/filmstats/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	c, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFile, c.File)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 'X', c.Letter)
	assert.Equal(t, 10, c.TopWords)
	assert.Equal(t, config.LetterModeExact, c.LetterMode)
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, int64(20), c.ItemsPerPage)
	assert.False(t, c.Watch)
	assert.Equal(t, time.Second, c.WatchInterval)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvFile, "/data/films.txt")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvLetter, "Z")
	t.Setenv(config.EnvTopWords, "3")
	t.Setenv(config.EnvLetterMode, "first")
	t.Setenv(config.EnvWorkers, "2")
	t.Setenv(config.EnvItemsPerPage, "5")
	t.Setenv(config.EnvWatch, "true")
	t.Setenv(config.EnvWatchInterval, "250ms")

	c, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/data/films.txt", c.File)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 'Z', c.Letter)
	assert.Equal(t, 3, c.TopWords)
	assert.Equal(t, config.LetterModeFirst, c.LetterMode)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, int64(5), c.ItemsPerPage)
	assert.True(t, c.Watch)
	assert.Equal(t, 250*time.Millisecond, c.WatchInterval)
}

func TestFromEnvEmptyValuesKeepDefaults(t *testing.T) {
	t.Setenv(config.EnvLetter, "")
	t.Setenv(config.EnvWatchInterval, "1ms")

	c, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 'X', c.Letter)
	assert.Equal(t, time.Millisecond, c.WatchInterval)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{config.EnvLetter, "XY"},
		{config.EnvLetterMode, "all"},
		{config.EnvTopWords, "ten"},
		{config.EnvTopWords, "0"},
		{config.EnvWorkers, "-1"},
		{config.EnvItemsPerPage, "many"},
		{config.EnvWatch, "maybe"},
		{config.EnvWatchInterval, "soon"},
		{config.EnvWatchInterval, "-1s"},
		{config.EnvWatchInterval, "500us"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.FromEnv()
			assert.Error(t, err)
		})
	}
}
