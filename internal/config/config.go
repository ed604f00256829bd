package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"

	ShareLocal = "local"
	ShareS3    = "s3"
	ShareHTTP  = "http"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings for the scanbatch CLI.
type Config struct {
	StorageDriver string
	DataDir       string
	ExportDir     string
	ResumeDelay   time.Duration
	// Timezone is an IANA name; empty means the host local zone.
	Timezone           string
	CSVDelimiter       string
	CSVHeaderDelimiter string
	LogLevel           string

	ShareTarget       string
	S3Bucket          string
	S3Prefix          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3LinkTTL         time.Duration
	HTTPShareAddr     string
	HTTPShareBaseURL  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.DataDir = "data"
	c.ExportDir = "exports"
	c.ResumeDelay = 800 * time.Millisecond
	c.Timezone = ""
	c.CSVDelimiter = ";"
	c.CSVHeaderDelimiter = ","
	c.LogLevel = "info"
	c.ShareTarget = ShareLocal
	c.S3Region = "us-east-1"
	c.S3LinkTTL = 24 * time.Hour
	c.HTTPShareAddr = "0.0.0.0:8088"
	c.HTTPShareBaseURL = "http://127.0.0.1:8088"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

// Delimiters returns the row and header delimiters as runes.
func (c *Config) Delimiters() (row, header rune, err error) {
	row, err = singleRune("csv_delimiter", c.CSVDelimiter)
	if err != nil {
		return 0, 0, err
	}
	if c.CSVHeaderDelimiter == "" {
		return row, row, nil
	}
	header, err = singleRune("csv_header_delimiter", c.CSVHeaderDelimiter)
	if err != nil {
		return 0, 0, err
	}
	return row, header, nil
}

func singleRune(key, s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, key, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("%w: %s cannot be %q", ErrInvalidConfig, key, s)
	}
	return r, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverFile:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.StorageDriver)
	}
	switch c.ShareTarget {
	case ShareLocal, ShareHTTP:
	case ShareS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("%w: s3_bucket is required for share target s3", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown share target %q", ErrInvalidConfig, c.ShareTarget)
	}
	if c.ResumeDelay < 0 {
		return fmt.Errorf("%w: resume delay cannot be negative", ErrInvalidConfig)
	}
	if _, _, err := c.Delimiters(); err != nil {
		return err
	}
	_, err := c.Location()
	return err
}
