package config

import (
	"errors"
	"fmt"
)

// ErrAlreadyParsed is returned when the flags of a Parser
// are parsed a second time
var ErrAlreadyParsed = errors.New("flags have already been parsed")

// ErrParseFlags is returned when the command line arguments
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// Unwrap returns the error reported by the flag parser
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// ErrReadConfigFile is returned when the file given with
// --config cannot be read
type ErrReadConfigFile struct {
	Path  string
	Cause error
}

// Error implementation of error for ErrReadConfigFile
func (e ErrReadConfigFile) Error() string {
	return fmt.Sprintf("failed to read config file %s: %s", e.Path, e.Cause.Error())
}

// Unwrap returns the error reported by viper
func (e ErrReadConfigFile) Unwrap() error {
	return e.Cause
}
