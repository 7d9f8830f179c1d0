// SPDX-License-Identifier: MPL-2.0

package nodeset

import (
	"fmt"
	"regexp"
	"strconv"
)

// nodeNamePattern matches a literal node name: a prefix of letters and
// underscores with at most one trailing '-' or '_' separator, followed by
// one or more digits, and nothing else.
var nodeNamePattern = regexp.MustCompile(`^([A-Za-z_]+[-_]?)([0-9]+)$`)

// maxSuffixDigits bounds the digit string so the numeric value always fits
// in an int. Longer suffixes are rejected as invalid syntax.
const maxSuffixDigits = 18

// Node is a single cluster node name decomposed into its prefix and its
// literal digit string. The digit string preserves leading zeros, and its
// length (the width) is part of the node's identity: "node9" and "node09"
// are different nodes. The zero value is not a valid Node; construct via
// ParseNode.
type Node struct {
	// Prefix is the non-numeric part of the name, e.g. "node" or "node-".
	Prefix string
	// Digits is the numeric suffix exactly as written, e.g. "007".
	Digits string
}

// ParseNode parses a literal node name. It returns an InvalidNodeSyntaxError
// if the text does not match the node grammar.
func ParseNode(text string) (Node, error) {
	m := nodeNamePattern.FindStringSubmatch(text)
	if m == nil || len(m[2]) > maxSuffixDigits {
		return Node{}, &InvalidNodeSyntaxError{Input: text}
	}
	return Node{Prefix: m[1], Digits: m[2]}, nil
}

// Name returns the full node name, prefix plus digit string.
func (n Node) Name() string { return n.Prefix + n.Digits }

// String returns the full node name.
func (n Node) String() string { return n.Name() }

// Width returns the number of digits in the numeric suffix.
func (n Node) Width() int { return len(n.Digits) }

// Value returns the numeric value of the suffix.
func (n Node) Value() int {
	// ParseNode bounds the digit count, so Atoi cannot fail here.
	v, _ := strconv.Atoi(n.Digits)
	return v
}

// Succ returns the node that immediately follows n: same prefix, same
// width, suffix value one greater. It reports false when incrementing
// would carry into an extra digit (e.g. "node99" at width 2 has no
// successor; the range boundary is cut there).
func (n Node) Succ() (Node, bool) {
	next := fmt.Sprintf("%0*d", n.Width(), n.Value()+1)
	if len(next) != n.Width() {
		return Node{}, false
	}
	return Node{Prefix: n.Prefix, Digits: next}, true
}

// IsSuccessor reports whether b is exactly the successor of a: same prefix,
// same width, and b's value is a's value plus one without a width increase.
func IsSuccessor(a, b Node) bool {
	succ, ok := a.Succ()
	return ok && succ == b
}
