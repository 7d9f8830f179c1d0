// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes a config.cue with the given contents into dir.
func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// load runs the file Provider against the given options.
func load(t *testing.T, opts LoadOptions) (*Config, error) {
	t.Helper()
	return NewProvider().Load(context.Background(), opts)
}

func TestProviderLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, err := load(t, LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := DefaultConfig()
	if cfg.Output.Separator != want.Output.Separator {
		t.Errorf("Separator = %q, want default %q", cfg.Output.Separator, want.Output.Separator)
	}
	if cfg.Parse.Separators != want.Parse.Separators {
		t.Errorf("Parse.Separators = %q, want default %q", cfg.Parse.Separators, want.Parse.Separators)
	}
}

func TestProviderLoad_ReadsConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
output: separator:    "newline"
output: color_scheme: "dark"
ui: verbose: true
`)

	cfg, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Output.Separator != SeparatorNewline {
		t.Errorf("Separator = %q, want %q", cfg.Output.Separator, SeparatorNewline)
	}
	if cfg.Output.ColorScheme != ColorSchemeDark {
		t.Errorf("ColorScheme = %q, want %q", cfg.Output.ColorScheme, ColorSchemeDark)
	}
	if !cfg.UI.Verbose {
		t.Error("Verbose = false, want true")
	}
	// Unset fields keep their defaults.
	if cfg.Parse.Separators != DefaultConfig().Parse.Separators {
		t.Errorf("Parse.Separators = %q, want default", cfg.Parse.Separators)
	}
}

func TestProviderLoad_RejectsUnknownSeparator(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `output: separator: "tabs"`)

	if _, err := load(t, LoadOptions{ConfigDirPath: dir}); err == nil {
		t.Fatal("Load succeeded, want schema validation error")
	}
}

func TestProviderLoad_RejectsMalformedCUE(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `output: { separator:`)

	if _, err := load(t, LoadOptions{ConfigDirPath: dir}); err == nil {
		t.Fatal("Load succeeded, want parse error")
	}
}

func TestProviderLoad_ConfigFilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `output: separator: "comma"`)

	cfg, err := load(t, LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Output.Separator != SeparatorComma {
		t.Errorf("Separator = %q, want %q", cfg.Output.Separator, SeparatorComma)
	}
}

func TestProviderLoad_MissingConfigFilePathFails(t *testing.T) {
	t.Parallel()

	_, err := load(t, LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue")})
	if err == nil {
		t.Fatal("Load succeeded, want missing-file error")
	}
}

func TestProviderLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load error = %v, want context.Canceled", err)
	}
}

func TestResolvedPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `ui: verbose: false`)
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ResolvedPath()
	if err != nil {
		t.Fatalf("ResolvedPath returned error: %v", err)
	}
	if got != path {
		t.Errorf("ResolvedPath = %q, want %q", got, path)
	}
}

func TestResolvedPath_HonorsFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `ui: verbose: false`)
	SetConfigFilePathOverride(path)
	t.Cleanup(Reset)

	got, err := ResolvedPath()
	if err != nil {
		t.Fatalf("ResolvedPath returned error: %v", err)
	}
	if got != path {
		t.Errorf("ResolvedPath = %q, want %q", got, path)
	}
}
