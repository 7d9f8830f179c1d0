// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"noderange/pkg/nodeset"

	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member TARGET [NODES|RANGES...]",
	Short: "Test whether a node belongs to a range",
	Long: `Test whether a node belongs to a range.

TARGET must be a literal node name; the remaining arguments follow the
usual token grammar. Exits 0 when the node is a member, 1 when it is
not, and 2 on a parse error. Digit width is part of identity, so
node-2 is never a member of node-[00-63].`,
	Example: `  noderange member node-02 'node-[00-63]'
  noderange member node08 'node[00-06]' node08`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMember,
}

func runMember(cmd *cobra.Command, args []string) error {
	conf := activeConfig()
	target, fragments := args[0], args[1:]
	logger.Debug("testing membership", "target", target, "range", fragments)

	ok, err := nodeset.Contains(target, fragments, nodeset.WithSeparators(conf.Parse.Separators))
	if err != nil {
		return parseFailure("test range membership", err)
	}

	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), ErrorStyle.Render("false"))
		return &ExitError{Code: 1, Err: fmt.Errorf("%s is not a member of the range", target)}
	}
	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("true"))
	return nil
}
