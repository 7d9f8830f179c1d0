// SPDX-License-Identifier: MPL-2.0

package nodeset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeSyntax is the sentinel error wrapped by InvalidNodeSyntaxError.
	ErrInvalidNodeSyntax = errors.New("invalid node syntax")

	// ErrInvalidRangeSyntax is the sentinel error wrapped by InvalidRangeSyntaxError.
	ErrInvalidRangeSyntax = errors.New("invalid range syntax")

	// ErrMismatchedRangeWidth is the sentinel error wrapped by MismatchedRangeWidthError.
	ErrMismatchedRangeWidth = errors.New("mismatched range width")

	// ErrEmptyInput is returned when an operation receives no tokens at all.
	// Expansion and condensing treat an empty token sequence as an error
	// rather than producing an empty result.
	ErrEmptyInput = errors.New("empty input")
)

type (
	// InvalidNodeSyntaxError is returned when a token is neither a valid
	// literal node name nor a valid range construct.
	InvalidNodeSyntaxError struct {
		Input string
	}

	// InvalidRangeSyntaxError is returned when a token contains a bracket
	// construct that does not match the PREFIX[DIGITS-DIGITS] grammar.
	InvalidRangeSyntaxError struct {
		Input string
	}

	// MismatchedRangeWidthError is returned when the start and end digit
	// runs of a range differ in length (e.g. "node[0-999]"). This aborts
	// the whole multi-token operation; there is no per-token recovery.
	MismatchedRangeWidthError struct {
		Input string
		Start string
		End   string
	}
)

// Error implements the error interface.
func (e *InvalidNodeSyntaxError) Error() string {
	return fmt.Sprintf("invalid node syntax %q (expected a prefix of letters/underscores, an optional '-' or '_' separator, then digits)", e.Input)
}

// Unwrap returns ErrInvalidNodeSyntax so callers can use errors.Is for programmatic detection.
func (e *InvalidNodeSyntaxError) Unwrap() error { return ErrInvalidNodeSyntax }

// Error implements the error interface.
func (e *InvalidRangeSyntaxError) Error() string {
	return fmt.Sprintf("invalid range syntax %q (expected PREFIX[START-END] with numeric bounds)", e.Input)
}

// Unwrap returns ErrInvalidRangeSyntax so callers can use errors.Is for programmatic detection.
func (e *InvalidRangeSyntaxError) Unwrap() error { return ErrInvalidRangeSyntax }

// Error implements the error interface.
func (e *MismatchedRangeWidthError) Error() string {
	return fmt.Sprintf("mismatched range width in %q: start %q has %d digit(s), end %q has %d digit(s)",
		e.Input, e.Start, len(e.Start), e.End, len(e.End))
}

// Unwrap returns ErrMismatchedRangeWidth so callers can use errors.Is for programmatic detection.
func (e *MismatchedRangeWidthError) Unwrap() error { return ErrMismatchedRangeWidth }
