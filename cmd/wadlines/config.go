package main

import (
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stuarthighley/wadlines/sink"
)

// Config is resolved from flags, WADLINES_* environment variables, an optional config file and
// a .env file, in that order of precedence.
type Config struct {
	WAD       string  `mapstructure:"wad"`
	Level     string  `mapstructure:"level"`
	Scale     float64 `mapstructure:"scale"`
	Format    string  `mapstructure:"format"`
	Out       string  `mapstructure:"out"`
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	LineWidth float64 `mapstructure:"line-width"`
	ByKind    bool    `mapstructure:"by-kind"`
	List      bool    `mapstructure:"list"`
	Tree      bool    `mapstructure:"tree"`
	Serve     string  `mapstructure:"serve"`
	CacheMB   int64   `mapstructure:"cache-mb"`
	LogLevel  string  `mapstructure:"log-level"`
	LogFile   string  `mapstructure:"log-file"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wadlines", pflag.ContinueOnError)
	fs.String("config", "", "Path to a YAML, JSON or TOML config file")
	fs.String("wad", "DOOM1.WAD", "Path to the WAD file")
	fs.String("level", "E1M1", "Level marker name")
	fs.Float64("scale", 0.05, "Map unit to render unit scale")
	fs.String("format", "svg", "Output format: "+strings.Join(sink.Formats(), ", "))
	fs.String("out", "", "Output file, stdout if empty")
	fs.Int("width", 1280, "Image width for svg and png")
	fs.Int("height", 1024, "Image height for svg and png")
	fs.Float64("line-width", 1, "Line width for svg and png")
	fs.Bool("by-kind", false, "Color special lines by function")
	fs.Bool("list", false, "List level names and exit")
	fs.Bool("tree", false, "Print the level's BSP tree and exit")
	fs.String("serve", "", "Serve levels over HTTP on this address")
	fs.Int64("cache-mb", 64, "Decoded level cache size for -serve")
	fs.String("log-level", "info", "Log level")
	fs.String("log-file", "", "Also log to this file, rotated")
	return fs
}

func loadConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("WADLINES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %v", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.WAD == "" {
		return errors.New("no wad file given")
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	}
	if !slices.Contains(sink.Formats(), c.Format) {
		return errors.Errorf("unknown format %q, want one of %v", c.Format, sink.Formats())
	}
	return nil
}

func (c *Config) sinkOptions() sink.Options {
	return sink.Options{Width: c.Width, Height: c.Height, LineWidth: c.LineWidth, ByKind: c.ByKind}
}
