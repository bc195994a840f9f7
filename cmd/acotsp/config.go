package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/schakalakka/Ant-Colony-Optimization/colony"
)

// Config is the TOML-backed run description. Solver fields left at zero fall
// back to colony.DefaultOptions values.
type Config struct {
	CSVPath string `toml:"csv_path"`

	NrAnts       int     `toml:"nr_ants"`
	NrBest       int     `toml:"nr_best"`
	NrIterations int     `toml:"nr_iterations"`
	Decay        float64 `toml:"decay"`
	Alpha        float64 `toml:"alpha"`
	Beta         float64 `toml:"beta"`
	PheroMin     float64 `toml:"phero_min"`
	PheroMax     float64 `toml:"phero_max"`
	Parallelism  int     `toml:"parallelism"`
	Seed         int64   `toml:"seed"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// LogEvery controls how often iteration progress is logged (in
	// iterations). 0 disables progress logging.
	LogEvery int `toml:"log_every"`
}

// LoadConfig loads configuration from the specified TOML file.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if cfg.CSVPath == "" {
		return nil, fmt.Errorf("csv_path is required in config file")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogEvery < 0 {
		cfg.LogEvery = 0
	}

	return &cfg, nil
}

// Options merges the config's solver fields over colony.DefaultOptions.
func (c *Config) Options() colony.Options {
	opts := colony.DefaultOptions()
	if c.NrAnts > 0 {
		opts.NrAnts = c.NrAnts
	}
	if c.NrBest > 0 {
		opts.NrBest = c.NrBest
	}
	if c.NrIterations > 0 {
		opts.NrIterations = c.NrIterations
	}
	if c.Decay != 0 {
		opts.Decay = c.Decay
	}
	if c.Alpha != 0 {
		opts.Alpha = c.Alpha
	}
	if c.Beta != 0 {
		opts.Beta = c.Beta
	}
	if c.PheroMin != 0 || c.PheroMax != 0 {
		opts.PheroMin = c.PheroMin
		opts.PheroMax = c.PheroMax
	}
	if c.Parallelism > 0 {
		opts.Parallelism = c.Parallelism
	}
	opts.Seed = c.Seed
	return opts
}

// SetupLogger configures logrus from the config: level, full timestamps and,
// when log_file is set, lumberjack rotation.
func SetupLogger(cfg *Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", cfg.LogLevel)
		level = log.InfoLevel
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.LogFile == "" {
		return // stdout
	}

	if err = os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		log.Warnf("Cannot create log directory for %s: %v; logging to stdout", cfg.LogFile, err)
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100, // MB per file
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	})
}
