// SPDX-License-Identifier: MPL-2.0

// noderange converts between explicit lists of cluster node names and the
// compact range notation used by job schedulers.
package main

import cmd "noderange/cmd/noderange"

func main() {
	cmd.Execute()
}
