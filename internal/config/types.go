// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// SeparatorSpace joins expanded node names with single spaces.
	SeparatorSpace Separator = "space"
	// SeparatorNewline prints one node name per line.
	SeparatorNewline Separator = "newline"
	// SeparatorComma joins expanded node names with commas.
	SeparatorComma Separator = "comma"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidSeparator is the sentinel error wrapped by InvalidSeparatorError.
	ErrInvalidSeparator = errors.New("invalid output separator")
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidParseSeparators is returned when parse.separators is empty.
	ErrInvalidParseSeparators = errors.New("invalid parse separators")
)

type (
	// Separator selects how the expand command joins node names on output.
	Separator string

	// InvalidSeparatorError is returned when a Separator value is not recognized.
	// It wraps ErrInvalidSeparator for errors.Is() compatibility.
	InvalidSeparatorError struct {
		Value Separator
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputConfig controls how results are printed.
	OutputConfig struct {
		// Separator joins node names in expand output: "space", "newline", or "comma".
		Separator Separator `mapstructure:"separator"`
		// ColorScheme selects the terminal color scheme: "auto", "dark", or "light".
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}

	// ParseConfig controls input tokenization.
	ParseConfig struct {
		// Separators is the set of characters that delimit input tokens.
		Separators string `mapstructure:"separators"`
	}

	// UIConfig holds user-interface preferences.
	UIConfig struct {
		// Verbose enables verbose diagnostics by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root configuration for noderange.
	Config struct {
		Output OutputConfig `mapstructure:"output"`
		Parse  ParseConfig  `mapstructure:"parse"`
		UI     UIConfig     `mapstructure:"ui"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Separator:   SeparatorSpace,
			ColorScheme: ColorSchemeAuto,
		},
		Parse: ParseConfig{
			Separators: ", \t\n",
		},
		UI: UIConfig{
			Verbose: false,
		},
	}
}

// IsValid returns whether the Separator is one of the recognized values.
func (s Separator) IsValid() bool {
	switch s {
	case SeparatorSpace, SeparatorNewline, SeparatorComma:
		return true
	default:
		return false
	}
}

// Validate returns an error if the Separator is not recognized.
func (s Separator) Validate() error {
	if !s.IsValid() {
		return &InvalidSeparatorError{Value: s}
	}
	return nil
}

// JoinString returns the literal string placed between node names on output.
func (s Separator) JoinString() string {
	switch s {
	case SeparatorNewline:
		return "\n"
	case SeparatorComma:
		return ","
	default:
		return " "
	}
}

// String returns the string representation of the Separator.
func (s Separator) String() string { return string(s) }

// Error implements the error interface.
func (e *InvalidSeparatorError) Error() string {
	return fmt.Sprintf("invalid output separator %q (must be \"space\", \"newline\", or \"comma\")", e.Value)
}

// Unwrap returns ErrInvalidSeparator so callers can use errors.Is for programmatic detection.
func (e *InvalidSeparatorError) Unwrap() error { return ErrInvalidSeparator }

// IsValid returns whether the ColorScheme is one of the recognized values.
func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	default:
		return false
	}
}

// Validate returns an error if the ColorScheme is not recognized.
func (c ColorScheme) Validate() error {
	if !c.IsValid() {
		return &InvalidColorSchemeError{Value: c}
	}
	return nil
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be \"auto\", \"dark\", or \"light\")", e.Value)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is for programmatic detection.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate checks constraints on values that may bypass the CUE schema,
// such as environment overrides merged in by viper.
func (c *Config) Validate() error {
	if err := c.Output.Separator.Validate(); err != nil {
		return err
	}
	if err := c.Output.ColorScheme.Validate(); err != nil {
		return err
	}
	if c.Parse.Separators == "" {
		return ErrInvalidParseSeparators
	}
	return nil
}
