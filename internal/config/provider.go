// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where the configuration is read from. The zero
	// value searches the platform config directory for config.cue.
	LoadOptions struct {
		// ConfigFilePath forces loading a specific file, e.g. the value of
		// the --config flag. The file must exist.
		ConfigFilePath string
		// ConfigDirPath overrides the platform config directory lookup.
		ConfigDirPath string
	}

	// Provider resolves and loads the noderange configuration. The CLI
	// loads through a Provider so commands never touch package-level
	// override state directly.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	// cueFileProvider reads config.cue through the schema-validated viper
	// pipeline in loadWithOptions.
	cueFileProvider struct{}
)

// NewProvider returns the file-backed Provider used by the CLI.
func NewProvider() Provider {
	return &cueFileProvider{}
}

// Load reads the configuration from the source the options select. A
// missing config.cue in the search directory yields defaults without
// error; a missing ConfigFilePath is an error.
func (p *cueFileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
