// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"noderange/internal/config"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the usage guide",
	Long:  "Render the noderange usage guide in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := glamour.Render(guideMarkdown, glamourTheme(activeConfig().Output.ColorScheme))
		if err != nil {
			return fmt.Errorf("failed to render guide: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// glamourTheme maps the configured color scheme to a glamour style name.
func glamourTheme(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
