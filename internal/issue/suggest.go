// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"

	"noderange/pkg/nodeset"
)

// FromParseError wraps a nodeset parse error with the given operation and
// suggestions tailored to the failure kind. Unknown error kinds are wrapped
// without suggestions. Returns nil when err is nil.
func FromParseError(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}

	ctx := NewErrorContext().WithOperation(operation).Wrap(err)

	switch {
	case errors.Is(err, nodeset.ErrMismatchedRangeWidth):
		var widthErr *nodeset.MismatchedRangeWidthError
		if errors.As(err, &widthErr) {
			ctx.WithResource(widthErr.Input)
		}
		ctx.WithSuggestion("Zero-pad both bounds to the same width, e.g. node[000-999] instead of node[0-999]").
			WithSuggestion("Split the input into one range per width if the set really spans widths")
	case errors.Is(err, nodeset.ErrInvalidRangeSyntax):
		var rangeErr *nodeset.InvalidRangeSyntaxError
		if errors.As(err, &rangeErr) {
			ctx.WithResource(rangeErr.Input)
		}
		ctx.WithSuggestion("Write ranges as PREFIX[START-END] with numeric bounds, e.g. node[00-06]")
	case errors.Is(err, nodeset.ErrInvalidNodeSyntax):
		var nodeErr *nodeset.InvalidNodeSyntaxError
		if errors.As(err, &nodeErr) {
			ctx.WithResource(nodeErr.Input)
		}
		ctx.WithSuggestion("Node names are letters/underscores, an optional '-' or '_', then digits, e.g. node-007")
	case errors.Is(err, nodeset.ErrEmptyInput):
		ctx.WithSuggestion("Pass at least one node name or range, e.g. 'node[00-06],node08'")
	}

	return ctx.Build()
}
