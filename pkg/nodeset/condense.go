// SPDX-License-Identifier: MPL-2.0

package nodeset

import "strings"

// Condense expands the input fragments, deduplicates them, and emits the
// minimal comma-joined sequence of literal names and prefix[start-end]
// ranges that reproduces the set. Output tokens appear in canonical order.
//
// A run never crosses a digit-width boundary: "node99" and "node100" end
// up in separate tokens because no node at the top of its width has a
// successor.
func Condense(fragments []string, opts ...Option) (string, error) {
	nodes, err := ExpandUnique(fragments, opts...)
	if err != nil {
		return "", err
	}
	return CondenseNodes(nodes), nil
}

// CondenseNodes renders an already sorted, duplicate-free node sequence in
// range notation. It partitions the sequence into maximal successor runs,
// bounded by an explicit end-of-sequence check.
func CondenseNodes(nodes []Node) string {
	var parts []string
	for i := 0; i < len(nodes); {
		j := i
		for j+1 < len(nodes) && IsSuccessor(nodes[j], nodes[j+1]) {
			j++
		}
		if j == i {
			parts = append(parts, nodes[i].Name())
		} else {
			parts = append(parts, nodes[i].Prefix+"["+nodes[i].Digits+"-"+nodes[j].Digits+"]")
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
