package config

import (
	"io"

	"github.com/companion-uyan/data-structure-algorithm/errors"
	"github.com/companion-uyan/data-structure-algorithm/logs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Logging is the Binder of the logging flags of a command
type Logging struct {
	Level string
	JSON  bool
}

// Bind implementation of Binder for Logging
func (l *Logging) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log-level", "info",
		"minimum level of the log entries: debug, info, warn or error")
	cmd.PersistentFlags().Bool("log-json", false,
		"write log entries as json")
	return nil
}

// Configure implementation of Binder for Logging
func (l *Logging) Configure(v *viper.Viper) error {
	l.Level = v.GetString("log-level")
	l.JSON = v.GetBool("log-json")

	if _, err := logs.ParseLevel(l.Level); err != nil {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid log level %q", l.Level)
	}

	return nil
}

// Logger builds the logger described by the configuration,
// writing to out
func (l *Logging) Logger(out io.Writer) *logs.Logrus {
	level, err := logs.ParseLevel(l.Level)
	if err != nil {
		panic("logging used before it was configured")
	}

	return logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  level,
		Output: out,
		JSON:   l.JSON,
	})
}
