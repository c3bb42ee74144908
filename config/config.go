// Package config loads the keyplay driver configuration using Viper.
//
// Precedence, lowest to highest: built-in defaults, ~/.keyplay/config.toml,
// ./keyplay.toml, KEYPLAY_* environment variables, command-line flags
// (applied by the CLI on top of the loaded Config).
package config

import "time"

// Config holds the global render settings resolved before planning
type Config struct {
	// OpenSCADPath overrides the OpenSCAD executable location; empty
	// means resolve from PATH
	OpenSCADPath string `mapstructure:"openscad_path"`

	// PlaygroundPath is the keycap_playground.scad entry point
	PlaygroundPath string `mapstructure:"playground_path"`

	// ColorSCADPath is an optional colorscad wrapper, used per keycap
	// only if it exists on disk at serialization time
	ColorSCADPath string `mapstructure:"colorscad_path"`

	// OutputDir is where generated model files go
	OutputDir string `mapstructure:"output_dir"`

	// FileType is the primary output format (stl or 3mf)
	FileType string `mapstructure:"file_type"`

	// MaxProcesses caps simultaneous OpenSCAD processes; 0 means auto
	// (one per physical CPU core)
	MaxProcesses int `mapstructure:"max_processes"`

	// Legends also renders a separate legend file per keycap
	Legends bool `mapstructure:"legends"`

	// ScadArgs are extra OpenSCAD arguments appended to every
	// invocation, in shell quoting ("--hardwarnings --quiet")
	ScadArgs string `mapstructure:"scad_args"`

	// Pace is the minimum delay between process launches; 0 disables
	Pace time.Duration `mapstructure:"pace"`
}
