// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"noderange/internal/config"
	"noderange/pkg/nodeset"

	"github.com/spf13/cobra"
)

var (
	// expandUnique applies sort and dedup before printing.
	expandUnique bool
	// expandCount prints the node count instead of the names.
	expandCount bool
	// expandSeparator overrides the configured output separator.
	expandSeparator string

	expandCmd = &cobra.Command{
		Use:     "expand [NODES|RANGES...]",
		Aliases: []string{"r2n"},
		Short:   "Expand range notation into individual node names",
		Long: `Expand range notation into individual node names.

Input tokens may be literal names (node08) or ranges (node[00-06]),
separated by commas or whitespace. Output preserves token order and
keeps duplicates unless --unique is given.`,
		Example: `  noderange expand 'node[00-06],node08'
  noderange expand --unique node01 node01 'node[00-03]'
  noderange expand --separator newline 'rack-[01-12]'`,
		Args: cobra.ArbitraryArgs,
		RunE: runExpand,
	}
)

func init() {
	expandCmd.Flags().BoolVarP(&expandUnique, "unique", "u", false, "sort and remove duplicate nodes")
	expandCmd.Flags().BoolVar(&expandCount, "count", false, "print the number of nodes instead of their names")
	expandCmd.Flags().StringVar(&expandSeparator, "separator", "", "output separator: space, newline, or comma (overrides config)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	conf := activeConfig()
	logger.Debug("expanding tokens", "args", args, "unique", expandUnique)

	expandFn := nodeset.Expand
	if expandUnique {
		expandFn = nodeset.ExpandUnique
	}
	nodes, err := expandFn(args, nodeset.WithSeparators(conf.Parse.Separators))
	if err != nil {
		return parseFailure("expand node ranges", err)
	}

	if expandCount {
		fmt.Fprintln(cmd.OutOrStdout(), len(nodes))
		return nil
	}

	sep, err := outputSeparator(conf)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), joinNodes(nodes, sep))
	return nil
}

// outputSeparator resolves the effective output separator: the --separator
// flag when given, the configured value otherwise.
func outputSeparator(conf *config.Config) (config.Separator, error) {
	if expandSeparator == "" {
		return conf.Output.Separator, nil
	}
	sep := config.Separator(expandSeparator)
	if err := sep.Validate(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "\n%s %s\n", ErrorStyle.Render("Error:"), err.Error())
		return "", &ExitError{Code: 2}
	}
	return sep, nil
}

// joinNodes renders a node sequence with the given separator.
func joinNodes(nodes []nodeset.Node, sep config.Separator) string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name()
	}
	return strings.Join(names, sep.JoinString())
}
