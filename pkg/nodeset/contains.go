// SPDX-License-Identifier: MPL-2.0

package nodeset

// Contains reports whether target, a literal node name, is a member of the
// node set denoted by the input fragments. The target must parse as a
// literal node; the fragments follow the full token grammar. Width is part
// of identity, so "node-2" is never a member of "node-[00-63]".
func Contains(target string, fragments []string, opts ...Option) (bool, error) {
	want, err := ParseNode(target)
	if err != nil {
		return false, err
	}
	nodes, err := Expand(fragments, opts...)
	if err != nil {
		return false, err
	}
	for _, n := range nodes {
		if n == want {
			return true, nil
		}
	}
	return false, nil
}
