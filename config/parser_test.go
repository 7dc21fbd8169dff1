package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/companion-uyan/data-structure-algorithm/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sizeBinder struct {
	Size int
}

func (b *sizeBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().Int("size", 10, "size of the thing")
	return nil
}

func (b *sizeBinder) Configure(v *viper.Viper) error {
	b.Size = v.GetInt("size")
	return nil
}

type testConfig struct {
	size    sizeBinder
	logging Logging
}

func (c *testConfig) Use() string {
	return "test"
}

func (c *testConfig) EnvPrefix() string {
	return "CONFIGTEST"
}

func (c *testConfig) Binders() []Binder {
	return []Binder{&c.size, &c.logging}
}

func newTestParser(t *testing.T) (*Parser, *testConfig) {
	c := &testConfig{}
	p, err := Generate(c)
	require.Nil(t, err)
	return p, c
}

func TestParserDefaults(t *testing.T) {
	p, c := newTestParser(t)

	assert.Nil(t, p.ParseArgs(nil))
	assert.Equal(t, 10, c.size.Size)
	assert.Equal(t, "info", c.logging.Level)
	assert.False(t, c.logging.JSON)
	assert.Equal(t, "", p.ConfigFile())
}

func TestParserFlags(t *testing.T) {
	p, c := newTestParser(t)

	assert.Nil(t, p.ParseArgs([]string{"--size", "3", "--log-level", "debug", "--log-json", "extra"}))
	assert.Equal(t, 3, c.size.Size)
	assert.Equal(t, "debug", c.logging.Level)
	assert.True(t, c.logging.JSON)
	assert.Equal(t, []string{"extra"}, p.Args())
}

func TestParserEnvironment(t *testing.T) {
	t.Setenv("CONFIGTEST_SIZE", "42")
	t.Setenv("CONFIGTEST_LOG_LEVEL", "warn")

	p, c := newTestParser(t)
	assert.Nil(t, p.ParseArgs(nil))
	assert.Equal(t, 42, c.size.Size)
	assert.Equal(t, "warn", c.logging.Level)

	// flags given explicitly win over the environment
	p, c = newTestParser(t)
	assert.Nil(t, p.ParseArgs([]string{"--size=7"}))
	assert.Equal(t, 7, c.size.Size)
}

func TestParserConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.Nil(t, os.WriteFile(path, []byte("size: 99\nlog-level: error\n"), 0644))

	p, c := newTestParser(t)
	assert.Nil(t, p.ParseArgs([]string{"--config", path, "--log-level", "debug"}))
	assert.Equal(t, 99, c.size.Size)
	assert.Equal(t, "debug", c.logging.Level)
	assert.Equal(t, path, p.ConfigFile())
}

func TestParserMissingConfigFile(t *testing.T) {
	p, _ := newTestParser(t)
	path := filepath.Join(t.TempDir(), "missing.yaml")

	err := p.ParseArgs([]string{"--config", path})
	var readErr ErrReadConfigFile
	if assert.True(t, errors.As(err, &readErr)) {
		assert.Equal(t, path, readErr.Path)
	}
}

func TestParserAlreadyParsed(t *testing.T) {
	p, _ := newTestParser(t)

	assert.Nil(t, p.ParseArgs(nil))
	assert.Equal(t, ErrAlreadyParsed, p.ParseArgs(nil))
}

func TestParserUnknownFlag(t *testing.T) {
	p, _ := newTestParser(t)

	err := p.ParseArgs([]string{"--colour", "blue"})
	var parseErr ErrParseFlags
	assert.True(t, errors.As(err, &parseErr))
}

func TestParserInvalidLogLevel(t *testing.T) {
	p, _ := newTestParser(t)

	err := p.ParseArgs([]string{"--log-level", "loud"})
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidConfig))
}

func TestLoggingLogger(t *testing.T) {
	l := Logging{Level: "debug"}
	assert.NotNil(t, l.Logger(os.Stderr))

	l.Level = "loud"
	assert.Panics(t, func() { l.Logger(os.Stderr) })
}
