// Package config loads default options from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// Config holds the defaults read from a file.
// Nil fields were not present in the file.
type Config struct {
	Depth   *int    `toml:"depth"`
	Clean   *bool   `toml:"clean"`
	Reverse *bool   `toml:"reverse"`
	Human   *bool   `toml:"human"`
	Output  *string `toml:"output"`
}

// Load reads the TOML file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	var cfg Config

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", path, err)
	}

	return &cfg, nil
}

// Apply copies the file values into options, except for flags set on the command line.
func (c *Config) Apply(flags *pflag.FlagSet, options *dirsize.Options) {
	if c.Depth != nil && !changed(flags, "depth") {
		options.Depth = *c.Depth
	}

	if c.Clean != nil && !changed(flags, "clean") {
		options.Clean = *c.Clean
	}

	if c.Reverse != nil && !changed(flags, "reverse") {
		options.Reverse = *c.Reverse
	}

	if c.Human != nil && !changed(flags, "human") {
		options.Human = *c.Human
	}

	if c.Output != nil && !changed(flags, "output") {
		options.Output = *c.Output
	}
}

func changed(flags *pflag.FlagSet, name string) bool {
	flag := flags.Lookup(name)

	return flag != nil && flag.Changed
}
