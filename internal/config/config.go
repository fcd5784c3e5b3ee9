package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// Environment variables names
const (
	EnvFile          = "FILMSTATS_FILE"
	EnvLogLevel      = "FILMSTATS_LOG_LEVEL"
	EnvLetter        = "FILMSTATS_LETTER"
	EnvTopWords      = "FILMSTATS_TOP_WORDS"
	EnvLetterMode    = "FILMSTATS_LETTER_MODE"
	EnvWorkers       = "FILMSTATS_WORKERS"
	EnvListenAddr    = "FILMSTATS_LISTEN_ADDR"
	EnvItemsPerPage  = "FILMSTATS_ITEMS_PER_PAGE"
	EnvWatch         = "FILMSTATS_WATCH"
	EnvWatchInterval = "FILMSTATS_WATCH_INTERVAL"
)

// Letter modes of the title letter statistic
const (
	LetterModeExact = "exact" // only titles made of a single letter
	LetterModeFirst = "first" // first letter of every title
)

const (
	DefaultFile          = "movies.txt"
	DefaultLogLevel      = "info"
	DefaultLetter        = 'X'
	DefaultTopWords      = 10
	DefaultListenAddr    = ":8080"
	DefaultItemsPerPage  = 20
	DefaultWatchInterval = time.Second
)

type Config struct {
	File          string
	LogLevel      string
	Letter        rune
	TopWords      int
	LetterMode    string
	Workers       int
	ListenAddr    string
	ItemsPerPage  int64
	Watch         bool
	WatchInterval time.Duration
}

// Load reads the optional .env file of the working directory, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the environment only
func FromEnv() (*Config, error) {
	var err error
	c := &Config{
		File:          getEnv(EnvFile, DefaultFile),
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		Letter:        DefaultLetter,
		TopWords:      DefaultTopWords,
		LetterMode:    strings.ToLower(getEnv(EnvLetterMode, LetterModeExact)),
		Workers:       runtime.NumCPU(),
		ListenAddr:    getEnv(EnvListenAddr, DefaultListenAddr),
		ItemsPerPage:  DefaultItemsPerPage,
		WatchInterval: DefaultWatchInterval,
	}

	if letter := os.Getenv(EnvLetter); letter != "" {
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("%s must be a single character, got %q", EnvLetter, letter)
		}
		c.Letter, _ = utf8.DecodeRuneInString(letter)
	}
	if c.LetterMode != LetterModeExact && c.LetterMode != LetterModeFirst {
		return nil, fmt.Errorf("%s must be %q or %q, got %q", EnvLetterMode, LetterModeExact, LetterModeFirst, c.LetterMode)
	}
	if c.TopWords, err = getPositiveInt(EnvTopWords, c.TopWords); err != nil {
		return nil, err
	}
	if c.Workers, err = getPositiveInt(EnvWorkers, c.Workers); err != nil {
		return nil, err
	}
	itemsPerPage, err := getPositiveInt(EnvItemsPerPage, int(c.ItemsPerPage))
	if err != nil {
		return nil, err
	}
	c.ItemsPerPage = int64(itemsPerPage)

	if value, ok := os.LookupEnv(EnvWatch); ok {
		if c.Watch, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", EnvWatch, err)
		}
	}
	if value, ok := os.LookupEnv(EnvWatchInterval); ok {
		if c.WatchInterval, err = time.ParseDuration(value); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", EnvWatchInterval, err)
		}
		// the polling watcher refuses anything below a millisecond
		if c.WatchInterval < time.Millisecond {
			return nil, fmt.Errorf("%s must be at least 1ms, got %s", EnvWatchInterval, value)
		}
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getPositiveInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
