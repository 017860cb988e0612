// Package config loads solver settings from YAML files and HEADWAY_*
// environment variables.
//
// Keys:
//
//	move_cost:     1      # cost of one forward step (> 0)
//	turn_cost:     1000   # cost of one quarter turn (> 0)
//	start_heading: east   # heading the agent faces on Start
//	end_headings:  all    # "all" or "first", see dijkstra.EndPolicy
//	workers:       0      # batch goroutines; 0 means runtime.NumCPU()
//	log_level:     info   # any logrus level name
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/headway/dijkstra"
	"github.com/katalvlaran/headway/maze"
)

// ErrInvalidConfig is returned by Validate, Load and Parse for bad values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. HEADWAY_TURN_COST.
const EnvPrefix = "HEADWAY"

// Config holds every tunable of a solve run.
type Config struct {
	MoveCost     int64  `yaml:"move_cost" mapstructure:"move_cost"`
	TurnCost     int64  `yaml:"turn_cost" mapstructure:"turn_cost"`
	StartHeading string `yaml:"start_heading" mapstructure:"start_heading"`
	EndHeadings  string `yaml:"end_headings" mapstructure:"end_headings"`
	Workers      int    `yaml:"workers" mapstructure:"workers"`
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the reference settings: move 1, turn 1000, start facing
// east, all End headings, one worker per CPU, info logging.
func Default() Config {
	return Config{
		MoveCost:     dijkstra.DefaultMoveCost,
		TurnCost:     dijkstra.DefaultTurnCost,
		StartHeading: maze.East.String(),
		EndHeadings:  dijkstra.EndAll.String(),
		Workers:      0,
		LogLevel:     logrus.InfoLevel.String(),
	}
}

// Load reads path (YAML) on top of Default, then applies HEADWAY_*
// environment overrides. An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	vp := viper.New()
	def := Default()
	vp.SetDefault("move_cost", def.MoveCost)
	vp.SetDefault("turn_cost", def.TurnCost)
	vp.SetDefault("start_heading", def.StartHeading)
	vp.SetDefault("end_headings", def.EndHeadings)
	vp.SetDefault("workers", def.Workers)
	vp.SetDefault("log_level", def.LogLevel)

	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType(configType(path))
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// configType picks the viper decoder from the file extension, defaulting to YAML.
func configType(path string) string {
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
	case "yaml", "yml", "json", "toml":
		return ext
	}

	return "yaml"
}

// Parse decodes YAML data on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WriteYAML encodes cfg as YAML, e.g. to produce a starter config file.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.MoveCost <= 0 {
		return fmt.Errorf("%w: move_cost must be positive (%d)", ErrInvalidConfig, c.MoveCost)
	}
	if c.TurnCost <= 0 {
		return fmt.Errorf("%w: turn_cost must be positive (%d)", ErrInvalidConfig, c.TurnCost)
	}
	if _, err := maze.ParseHeading(c.StartHeading); err != nil {
		return fmt.Errorf("%w: start_heading: %v", ErrInvalidConfig, err)
	}
	if _, err := c.EndPolicy(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Heading returns the configured start heading.
func (c Config) Heading() (maze.Heading, error) {
	h, err := maze.ParseHeading(c.StartHeading)
	if err != nil {
		return h, fmt.Errorf("%w: start_heading: %v", ErrInvalidConfig, err)
	}

	return h, nil
}

// EndPolicy maps end_headings to a dijkstra.EndPolicy.
func (c Config) EndPolicy() (dijkstra.EndPolicy, error) {
	switch strings.ToLower(c.EndHeadings) {
	case dijkstra.EndAll.String():
		return dijkstra.EndAll, nil
	case dijkstra.EndFirst.String():
		return dijkstra.EndFirst, nil
	}

	return dijkstra.EndAll, fmt.Errorf("%w: end_headings must be %q or %q, got %q",
		ErrInvalidConfig, dijkstra.EndAll, dijkstra.EndFirst, c.EndHeadings)
}

// Level returns the configured logrus level, or Info if it does not parse.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// WorkerCount resolves Workers, mapping 0 to runtime.NumCPU().
func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.NumCPU()
}

// SolverOptions converts the cost and policy settings to dijkstra options.
func (c Config) SolverOptions() ([]dijkstra.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	policy, _ := c.EndPolicy()

	return []dijkstra.Option{
		dijkstra.WithMoveCost(c.MoveCost),
		dijkstra.WithTurnCost(c.TurnCost),
		dijkstra.WithEndPolicy(policy),
	}, nil
}
