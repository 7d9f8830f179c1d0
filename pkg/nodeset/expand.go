// SPDX-License-Identifier: MPL-2.0

package nodeset

import (
	"fmt"
	"slices"
	"strconv"
)

// Option configures an expansion, condensing, or membership operation.
type Option func(*options)

type options struct {
	separators string
}

func defaultOptions() options {
	return options{separators: DefaultSeparators}
}

// WithSeparators overrides the characters used to split raw input into
// tokens. An empty string restores the default set.
func WithSeparators(separators string) Option {
	return func(o *options) { o.separators = separators }
}

// Expand parses the given input fragments and expands them into the node
// sequence they denote. Each fragment may contain several tokens separated
// by commas or whitespace. Literal tokens contribute one node; range tokens
// contribute one node per suffix value, ascending, zero-padded to the
// range's width.
//
// The result preserves token order and keeps duplicates; it is not sorted
// across tokens. Any parse failure aborts the whole expansion with no
// partial result, and an input with no tokens at all is ErrEmptyInput.
func Expand(fragments []string, opts ...Option) ([]Node, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var raw []string
	for _, frag := range fragments {
		raw = append(raw, SplitTokens(frag, o.separators)...)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}

	var nodes []Node
	for _, text := range raw {
		tok, err := ParseToken(text)
		if err != nil {
			return nil, err
		}
		nodes = appendToken(nodes, tok)
	}
	return nodes, nil
}

// appendToken appends every node a token denotes, in ascending suffix order.
func appendToken(nodes []Node, tok Token) []Node {
	// Bounds were validated by ParseToken, so Atoi cannot fail.
	sv, _ := strconv.Atoi(tok.Start)
	ev, _ := strconv.Atoi(tok.End)
	for v := sv; v <= ev; v++ {
		nodes = append(nodes, Node{
			Prefix: tok.Prefix,
			Digits: fmt.Sprintf("%0*d", tok.Width(), v),
		})
	}
	return nodes
}

// SortNodes returns a copy of the sequence, stably sorted under the
// canonical order. Equal nodes are indistinguishable, so stability only
// matters for determinism.
func SortNodes(nodes []Node) []Node {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b Node) int {
		return int(Compare(a, b))
	})
	return sorted
}

// Dedup collapses runs of equal nodes in a sorted sequence, keeping the
// first occurrence of each. The input must already be sorted under the
// canonical order; behavior on unsorted input is undefined.
func Dedup(sorted []Node) []Node {
	if len(sorted) == 0 {
		return nil
	}
	unique := sorted[:1:1]
	for _, n := range sorted[1:] {
		if n != unique[len(unique)-1] {
			unique = append(unique, n)
		}
	}
	return unique
}

// ExpandUnique expands the input fragments, then sorts and deduplicates
// the result under the canonical order.
func ExpandUnique(fragments []string, opts ...Option) ([]Node, error) {
	nodes, err := Expand(fragments, opts...)
	if err != nil {
		return nil, err
	}
	return Dedup(SortNodes(nodes)), nil
}
