// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for noderange.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"noderange/internal/config"
	"noderange/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose diagnostics
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration; nil until initRootConfig runs.
	cfg *config.Config

	// logger emits verbose diagnostics to stderr. Level is raised to debug
	// when --verbose is set.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "noderange",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "noderange",
		Short: "Convert between node lists and range notation",
		Long: TitleStyle.Render("noderange") + SubtitleStyle.Render(" - Convert between node lists and range notation") + `

noderange converts cluster node names between an explicit list
(node00 node01 node02) and the compact range notation used by job
schedulers (node[00-02]). Inputs may mix literal names and ranges,
separated by commas or whitespace.

` + SubtitleStyle.Render("Examples:") + `
  noderange expand 'node[00-06],node08'   List every node in the set
  noderange fold node03 node01 node02     Condense a list into ranges
  noderange member node-02 'node-[00-63]' Test membership

Installed as ` + CmdStyle.Render("r2n") + ` or ` + CmdStyle.Render("n2r") + ` (hardlink or symlink), the binary
dispatches straight to expand or fold.`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/noderange/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(guideCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// aliasSubcommand maps an invocation basename to the subcommand it stands
// for. Installing the binary as "r2n" or "n2r" selects expand or fold
// without typing the subcommand.
func aliasSubcommand(invocation string) (string, bool) {
	switch filepath.Base(invocation) {
	case "r2n":
		return "expand", true
	case "n2r":
		return "fold", true
	default:
		return "", false
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if sub, ok := aliasSubcommand(os.Args[0]); ok {
		os.Args = append([]string{os.Args[0], sub}, os.Args[1:]...)
	}

	// Use fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration through the config Provider,
// honoring the --config flag.
func initRootConfig() {
	if cfgFile != "" {
		// Keep ResolvedPath (used by `config show`) in sync with the flag.
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// activeConfig returns the loaded configuration, falling back to defaults
// when loading failed or has not happened yet.
func activeConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// parseFailure prints a styled, actionable parse error and converts it into
// an exit-code-2 error for Execute.
func parseFailure(operation string, err error) error {
	ae := issue.FromParseError(err, operation)
	fmt.Fprintf(os.Stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), ae.Format(verbose))
	return &ExitError{Code: 2}
}
