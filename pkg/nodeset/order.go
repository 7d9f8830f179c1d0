// SPDX-License-Identifier: MPL-2.0

package nodeset

import "strings"

// Ordering is the result of comparing two nodes under the canonical order.
// It is a proper three-valued result rather than a raw int, so callers can
// never mistake an ordering for a boolean or an error code.
type Ordering int

const (
	// Less means the first node sorts before the second.
	Less Ordering = iota - 1
	// Equal means the two nodes are the same name.
	Equal
	// Greater means the first node sorts after the second.
	Greater
)

// String returns a human-readable name for the Ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare totally orders two nodes: by prefix (lexicographic,
// case-sensitive), then by digit width, then by numeric value. Two nodes
// are Equal only when all three match, so "node9" and "node09" compare
// unequal even though their values coincide.
func Compare(a, b Node) Ordering {
	if c := strings.Compare(a.Prefix, b.Prefix); c != 0 {
		return Ordering(c)
	}
	switch {
	case a.Width() < b.Width():
		return Less
	case a.Width() > b.Width():
		return Greater
	}
	switch {
	case a.Value() < b.Value():
		return Less
	case a.Value() > b.Value():
		return Greater
	}
	return Equal
}
