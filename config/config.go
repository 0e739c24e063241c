package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Enum types

type LoggingLevel string

const (
	LoggingLevelDebug LoggingLevel = "debug"
	LoggingLevelInfo  LoggingLevel = "info"
	LoggingLevelWarn  LoggingLevel = "warn"
	LoggingLevelError LoggingLevel = "error"
)

type ReportFormat string

const (
	ReportFormatLine  ReportFormat = "line"
	ReportFormatTable ReportFormat = "table"
)

const (
	DefaultInputPath = "cities.txt"
	DefaultWorkers   = 1
)

var ErrInvalid = errors.New("config: invalid value")

// Config file structure

type ConfigFile struct {
	Input   InputConfig
	Search  SearchConfig
	Logging LoggingConfig
	Report  ReportConfig
}

type InputConfig struct {
	Path          string
	SortLocations bool `toml:"sort_locations"`
}

type SearchConfig struct {
	Workers           int
	DistinctReversals bool   `toml:"distinct_reversals"`
	ProgressEvery     uint64 `toml:"progress_every"`
}

type LoggingConfig struct {
	Level string
}

type ReportConfig struct {
	Format string
}

// Default returns the configuration used when no file is given.
func Default() *ConfigFile {
	return &ConfigFile{
		Input:   InputConfig{Path: DefaultInputPath},
		Search:  SearchConfig{Workers: DefaultWorkers, DistinctReversals: true},
		Logging: LoggingConfig{Level: string(LoggingLevelError)},
		Report:  ReportConfig{Format: string(ReportFormatLine)},
	}
}

// Unmarshal reads file_path on top of Default(), so keys missing from the
// file keep their default values.
func Unmarshal(file_path string) (*ConfigFile, error) {
	config_file := Default()
	data, err := os.ReadFile(file_path)
	if err != nil {
		return nil,
			fmt.Errorf("config: unable to read %s: %w", file_path, err)
	}
	err = toml.Unmarshal(data, config_file)
	if err != nil {
		return nil,
			fmt.Errorf("config: unable to unmarshal %s: %w", file_path, err)
	}
	if err = config_file.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", file_path, err)
	}
	return config_file, nil
}

// Validate rejects values the search cannot run with.
func (c *ConfigFile) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("%w: input.path is empty", ErrInvalid)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers=%d", ErrInvalid, c.Search.Workers)
	}
	switch ReportFormat(c.Report.Format) {
	case ReportFormatLine, ReportFormatTable:
	default:
		return fmt.Errorf("%w: report.format=%q", ErrInvalid, c.Report.Format)
	}
	return nil
}

// SlogLevel maps the configured level to slog. ok is false for unknown
// values, in which case slog.LevelError is returned.
func (l LoggingConfig) SlogLevel() (level slog.Level, ok bool) {
	switch LoggingLevel(l.Level) {
	case LoggingLevelDebug:
		return slog.LevelDebug, true
	case LoggingLevelInfo:
		return slog.LevelInfo, true
	case LoggingLevelWarn:
		return slog.LevelWarn, true
	case LoggingLevelError:
		return slog.LevelError, true
	default:
		return slog.LevelError, false
	}
}
