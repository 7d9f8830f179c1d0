// SPDX-License-Identifier: MPL-2.0

package nodeset

import "strings"

// DefaultSeparators are the characters that delimit tokens in raw input:
// commas and whitespace, accepted interchangeably.
const DefaultSeparators = ", \t\n"

// SplitTokens splits input into raw token strings on any of the separator
// runes, collapsing runs of separators so no empty tokens are produced.
// It is a pure function of its arguments; there is no process-wide
// separator state.
func SplitTokens(input, separators string) []string {
	if separators == "" {
		separators = DefaultSeparators
	}
	return strings.FieldsFunc(input, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}
