package config

import (
	"github.com/kballard/go-shellquote"

	"github.com/fcasco/keycap-playground/errors"
	"github.com/fcasco/keycap-playground/keycap"
)

// Validate checks the settings that must be sound before any invocation
// is planned. Failures here are fatal to the whole run.
func (c *Config) Validate() error {
	if _, err := keycap.ParseFileType(c.FileType); err != nil {
		return err
	}

	if c.MaxProcesses < 0 {
		return errors.NewInvalidConfigError(
			"max_processes must be zero (auto) or positive, got %d", c.MaxProcesses)
	}

	if c.Pace < 0 {
		return errors.NewInvalidConfigError("pace must not be negative, got %s", c.Pace)
	}

	if _, err := shellquote.Split(c.ScadArgs); err != nil {
		return errors.WithHint(
			errors.NewInvalidConfigError("malformed scad_args %q: %v", c.ScadArgs, err),
			"scad_args uses shell quoting, e.g. scad_args = \"--hardwarnings --quiet\"")
	}

	return nil
}

// ParsedFileType returns the validated output format
func (c *Config) ParsedFileType() (keycap.FileType, error) {
	return keycap.ParseFileType(c.FileType)
}

// ExtraArgs returns scad_args split into individual arguments
func (c *Config) ExtraArgs() ([]string, error) {
	if c.ScadArgs == "" {
		return nil, nil
	}
	args, err := shellquote.Split(c.ScadArgs)
	if err != nil {
		return nil, errors.NewInvalidConfigError("malformed scad_args %q: %v", c.ScadArgs, err)
	}
	return args, nil
}
