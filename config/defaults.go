package config

import "github.com/spf13/viper"

// SetDefaults registers the built-in defaults on a Viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("openscad_path", "")
	v.SetDefault("playground_path", "keycap_playground.scad")
	v.SetDefault("colorscad_path", "")
	v.SetDefault("output_dir", ".")
	v.SetDefault("file_type", "stl")
	v.SetDefault("max_processes", 2)
	v.SetDefault("legends", false)
	v.SetDefault("scad_args", "")
	v.SetDefault("pace", "0s")
}
