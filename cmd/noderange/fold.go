// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"noderange/pkg/nodeset"

	"github.com/spf13/cobra"
)

var foldCmd = &cobra.Command{
	Use:     "fold [NODES|RANGES...]",
	Aliases: []string{"condense", "n2r"},
	Short:   "Condense node names into compact range notation",
	Long: `Condense node names into compact range notation.

The input is deduplicated and sorted, then emitted as the minimal
comma-joined sequence of literal names and prefix[start-end] ranges.
Ranges never cross a digit-width boundary: node99 and node100 stay
in separate tokens.`,
	Example: `  noderange fold node00 node02 node01 node09
  noderange fold 'node[00-03],node04,node[06-08]'`,
	Args: cobra.ArbitraryArgs,
	RunE: runFold,
}

func runFold(cmd *cobra.Command, args []string) error {
	conf := activeConfig()
	logger.Debug("condensing tokens", "args", args)

	condensed, err := nodeset.Condense(args, nodeset.WithSeparators(conf.Parse.Separators))
	if err != nil {
		return parseFailure("condense node list", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), condensed)
	return nil
}
