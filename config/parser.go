package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config describes a command: its name, the prefix of the
// environment variables it reads and the groups of settings
// it is made of
type Config interface {
	Use() string
	EnvPrefix() string
	Binders() []Binder
}

// Parser resolves the settings of a Config from the command
// line, the environment and an optional config file, in that
// order of precedence
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// binders lists the config file binder ahead of the binders of
// the config, so that values read from the file are in place
// before the other binders are configured
func (p *Parser) binders() []Binder {
	return append([]Binder{p.file}, p.Config.Binders()...)
}

func (p *Parser) flags() *pflag.FlagSet {
	return p.cmd.PersistentFlags()
}

// ParseArgs parses args, which must not include the program
// name, and configures every binder with the resolved values
func (p *Parser) ParseArgs(args []string) error {
	flags := p.flags()
	if flags.Parsed() {
		return ErrAlreadyParsed
	}

	if err := flags.Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	for _, b := range p.binders() {
		if err := b.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Args returns the positional arguments left after parsing
func (p *Parser) Args() []string {
	return p.flags().Args()
}

// ConfigFile returns the path of the config file that was read,
// or an empty string
func (p *Parser) ConfigFile() string {
	return p.file.Path
}

// Usage writes the usage of the command to its output
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate builds the Parser of config. Every flag can also be
// set through an environment variable named after the flag with
// the prefix of config, and `.` or `-` replaced by `_`
func Generate(config Config) (*Parser, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	p := &Parser{
		Config: config,
		file:   &ConfigFile{},
		cmd:    &cobra.Command{Use: config.Use()},
		v:      v,
	}

	for _, b := range p.binders() {
		if err := b.Bind(v, p.cmd); err != nil {
			return nil, fmt.Errorf("failed to bind flags of %s: %w", config.Use(), err)
		}
	}

	if err := v.BindPFlags(p.flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags of %s: %w", config.Use(), err)
	}

	return p, nil
}
