// Package config loads benchmark settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shivanshs9/wordbench/internal/bucketset"
)

const (
	DefaultQueries    = 1000
	DefaultCSVPath    = "benchmark_results.csv"
	DefaultReportPath = "performance_report.txt"
)

type Config struct {
	// WordFile is loaded when a command is not given a file argument.
	WordFile   string `toml:"word_file"`
	Buckets    int    `toml:"buckets"`
	Queries    int    `toml:"queries"`
	Seed       uint64 `toml:"seed"`
	CSVPath    string `toml:"csv_path"`
	ReportPath string `toml:"report_path"`
}

func Default() Config {
	return Config{
		Buckets:    bucketset.DefaultBucketCount,
		Queries:    DefaultQueries,
		CSVPath:    DefaultCSVPath,
		ReportPath: DefaultReportPath,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Buckets < 0 {
		errs = append(errs, fmt.Errorf("buckets must not be negative, got %d", c.Buckets))
	}
	if c.Queries < 1 {
		errs = append(errs, fmt.Errorf("queries must be positive, got %d", c.Queries))
	}

	return errors.Join(errs...)
}
