package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder is implemented by each group of settings of a command.
// Bind declares its flags and defaults, and Configure reads back
// the resolved values once flags, environment and config file
// have been merged
type Binder interface {
	Bind(v *viper.Viper, cmd *cobra.Command) error
	Configure(v *viper.Viper) error
}

// ConfigFile is the Binder of the --config flag. When set, the
// file is read before any other binder is configured so its
// values act as defaults for flags not given explicitly
type ConfigFile struct {
	// Path of the file that was read, empty if none was given
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "",
		"path to a configuration file (yaml, json or toml)")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfigFile{Path: path, Cause: err}
	}

	f.Path = path
	return nil
}
