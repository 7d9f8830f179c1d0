// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"noderange/internal/config"
	"noderange/internal/issue"

	"github.com/spf13/cobra"
)

// defaultConfigTemplate is written by `noderange config init`.
const defaultConfigTemplate = `// noderange configuration.
// All fields are optional; the values below are the defaults.

output: {
	// How expand output joins node names: "space", "newline", or "comma".
	separator: "space"

	// Terminal color scheme: "auto", "dark", or "light".
	color_scheme: "auto"
}

parse: {
	// Characters that delimit tokens in raw input.
	separators: ", \t\n"
}

ui: {
	// Enable verbose diagnostics by default.
	verbose: false
}
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage noderange configuration",
	Long: `Manage noderange configuration.

Configuration is stored in:
  - Linux: ~/.config/noderange/config.cue
  - macOS: ~/Library/Application Support/noderange/config.cue
  - Windows: %APPDATA%\noderange\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})
}

func showConfig() error {
	conf := activeConfig()

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	path, err := config.ResolvedPath()
	if err == nil && path != "" {
		fmt.Printf("%s: %s\n", CmdStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", CmdStyle.Render("output.separator"), SuccessStyle.Render(conf.Output.Separator.String()))
	fmt.Printf("%s: %s\n", CmdStyle.Render("output.color_scheme"), SuccessStyle.Render(conf.Output.ColorScheme.String()))
	fmt.Printf("%s: %s\n", CmdStyle.Render("parse.separators"), SuccessStyle.Render(fmt.Sprintf("%q", conf.Parse.Separators)))
	fmt.Printf("%s: %s\n", CmdStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%t", conf.UI.Verbose)))
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return issue.WrapWithOperation(err, "resolve config directory")
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func initConfigFile() error {
	if err := config.EnsureConfigDir(); err != nil {
		return issue.WrapWithOperation(err, "create config directory")
	}
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return issue.WrapWithOperation(err, "resolve config directory")
	}
	path := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)

	if _, err := os.Stat(path); err == nil {
		fmt.Println(WarningStyle.Render("Config file already exists: ") + path)
		return nil
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Println(SuccessStyle.Render("Created ") + path)
	return nil
}
