// Package config loads the command line tool's YAML settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/spatial/internal/log"
	"gopkg.in/yaml.v3"
)

const (
	UnitsRadians = "rad"
	UnitsDegrees = "deg"

	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	// Units applies to angles read from flags and angles printed back.
	Units     string `yaml:"units"`
	Precision int    `yaml:"precision"`
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
	Workers   int    `yaml:"workers"`
}

func Default() Config {
	return Config{
		Units:     UnitsRadians,
		Precision: 6,
		Format:    FormatText,
		LogLevel:  string(log.LevelWarn),
		Workers:   1,
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Units != UnitsRadians && c.Units != UnitsDegrees {
		errs = append(errs, fmt.Errorf("units must be %q or %q, got %q", UnitsRadians, UnitsDegrees, c.Units))
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format))
	}
	if c.Precision < 0 || c.Precision > 17 {
		errs = append(errs, fmt.Errorf("precision must be within [0, 17], got %d", c.Precision))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
