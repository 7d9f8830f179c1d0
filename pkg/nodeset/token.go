// SPDX-License-Identifier: MPL-2.0

package nodeset

import (
	"regexp"
	"strconv"
	"strings"
)

// rangePattern matches a range token: the same prefix grammar as a literal
// node, then a bracketed pair of digit runs separated by '-'.
var rangePattern = regexp.MustCompile(`^([A-Za-z_]+[-_]?)\[([0-9]+)-([0-9]+)\]$`)

// TokenKind discriminates the two token forms of the input grammar.
type TokenKind int

const (
	// KindNode is a literal node name token.
	KindNode TokenKind = iota
	// KindRange is a prefix[start-end] range token.
	KindRange
)

// Token is one parsed element of an input sequence: either a literal node
// or a range descriptor. For a literal node Start and End hold the same
// digit string, so a Token always describes the inclusive suffix interval
// [Start, End] at a single width.
type Token struct {
	Kind   TokenKind
	Prefix string
	// Start and End are zero-padded digit strings of equal length,
	// already ordered so that Start's value never exceeds End's.
	Start string
	End   string
}

// Width returns the digit width shared by the token's bounds.
func (t Token) Width() int { return len(t.Start) }

// ParseToken parses one raw token into a Token. A token is either a literal
// node name or PREFIX[START-END]. Reversed numeric bounds are swapped
// silently; bounds of differing digit width are a MismatchedRangeWidthError,
// which callers treat as fatal for the whole operation.
func ParseToken(text string) (Token, error) {
	if n, err := ParseNode(text); err == nil {
		return Token{Kind: KindNode, Prefix: n.Prefix, Start: n.Digits, End: n.Digits}, nil
	}

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		prefix, start, end := m[1], m[2], m[3]
		if len(start) != len(end) {
			return Token{}, &MismatchedRangeWidthError{Input: text, Start: start, End: end}
		}
		if len(start) > maxSuffixDigits {
			return Token{}, &InvalidRangeSyntaxError{Input: text}
		}
		sv, _ := strconv.Atoi(start)
		ev, _ := strconv.Atoi(end)
		if sv > ev {
			start, end = end, start
		}
		return Token{Kind: KindRange, Prefix: prefix, Start: start, End: end}, nil
	}

	// A token carrying brackets was meant as a range and failed the range
	// grammar; everything else failed the node grammar.
	if strings.ContainsAny(text, "[]") {
		return Token{}, &InvalidRangeSyntaxError{Input: text}
	}
	return Token{}, &InvalidNodeSyntaxError{Input: text}
}
