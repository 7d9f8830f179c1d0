// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the noderange configuration.
//
// Configuration lives in config.cue under the platform config directory
// (e.g. ~/.config/noderange on Linux). Files are validated against an
// embedded CUE schema and merged into viper on top of the defaults, so a
// missing file simply yields DefaultConfig().
package config
