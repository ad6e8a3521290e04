package config

import (
	"fmt"
	"time"

	"github.com/cfoust/gmk/pkg/convert"
	"github.com/cfoust/gmk/pkg/normalize"
)

type ConversionConfig struct {
	Strict      bool   `json:"strict" yaml:"strict"`
	Deobfuscate string `json:"deobfuscate" yaml:"deobfuscate"`
	FixEvents   bool   `json:"fixEvents" yaml:"fixEvents"`
	Parallel    bool   `json:"parallel" yaml:"parallel"`
	Workers     int    `json:"workers" yaml:"workers"`
}

type OutputConfig struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}

func (c *Config) Timestamp() (time.Time, error) {
	if c.Output.Timestamp == "" {
		return time.Time{}, nil
	}

	timestamp, err := time.Parse(time.RFC3339, c.Output.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid output timestamp: %w", err)
	}
	return timestamp, nil
}

// Options translates the configuration into conversion options.
func (c *Config) Options() (convert.Options, error) {
	mode, err := normalize.ParseMode(c.Conversion.Deobfuscate)
	if err != nil {
		return convert.Options{}, err
	}

	timestamp, err := c.Timestamp()
	if err != nil {
		return convert.Options{}, err
	}

	return convert.Options{
		Deobfuscate: mode,
		FixEvents:   c.Conversion.FixEvents,
		Parallel:    c.Conversion.Parallel,
		Workers:     c.Conversion.Workers,
		Timestamp:   timestamp,
	}, nil
}
