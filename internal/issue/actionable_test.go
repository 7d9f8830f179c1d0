// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"

	"noderange/pkg/nodeset"
)

// ---------------------------------------------------------------------------
// ActionableError formatting tests
// ---------------------------------------------------------------------------

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "expand range"},
			expected: "failed to expand range",
		},
		{
			name:     "operation and resource",
			err:      &ActionableError{Operation: "expand range", Resource: "node[0-999]"},
			expected: "failed to expand range: node[0-999]",
		},
		{
			name: "operation, resource, and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("no such file"),
			},
			expected: "failed to load configuration: config.cue: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("condense node list").
		WithResource("node[0-999]").
		WithSuggestion("Zero-pad both bounds").
		Wrap(errors.New("mismatched range width")).
		Build()

	concise := err.Format(false)
	if !strings.Contains(concise, "failed to condense node list") {
		t.Errorf("Format(false) missing error line: %q", concise)
	}
	if !strings.Contains(concise, "• Zero-pad both bounds") {
		t.Errorf("Format(false) missing suggestion: %q", concise)
	}
	if strings.Contains(concise, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", concise)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
}

func TestErrorContext_Build_RequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("node01").Build(); got != nil {
		t.Errorf("Build() without operation = %+v, want nil", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "expand range"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %+v, want nil", got)
	}

	cause := errors.New("boom")
	wrapped := WrapWithOperation(cause, "expand range")
	if !errors.Is(wrapped, cause) {
		t.Errorf("wrapped error does not unwrap to its cause")
	}
}

// ---------------------------------------------------------------------------
// Parse-error suggestion tests
// ---------------------------------------------------------------------------

func TestFromParseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantSentinel error
		wantResource string
	}{
		{
			name:         "mismatched width",
			input:        "node[0-999]",
			wantSentinel: nodeset.ErrMismatchedRangeWidth,
			wantResource: "node[0-999]",
		},
		{
			name:         "malformed range",
			input:        "node[00-",
			wantSentinel: nodeset.ErrInvalidRangeSyntax,
			wantResource: "node[00-",
		},
		{
			name:         "bad node name",
			input:        "node",
			wantSentinel: nodeset.ErrInvalidNodeSyntax,
			wantResource: "node",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, parseErr := nodeset.ParseToken(tt.input)
			if parseErr == nil {
				t.Fatalf("ParseToken(%q) succeeded, want error", tt.input)
			}

			ae := FromParseError(parseErr, "expand range")
			if ae == nil {
				t.Fatal("FromParseError returned nil")
			}
			if !errors.Is(ae, tt.wantSentinel) {
				t.Errorf("wrapped error does not match sentinel %v", tt.wantSentinel)
			}
			if ae.Resource != tt.wantResource {
				t.Errorf("Resource = %q, want %q", ae.Resource, tt.wantResource)
			}
			if !ae.HasSuggestions() {
				t.Error("expected suggestions for parse error")
			}
		})
	}
}

func TestFromParseError_Nil(t *testing.T) {
	t.Parallel()

	if got := FromParseError(nil, "expand range"); got != nil {
		t.Errorf("FromParseError(nil) = %+v, want nil", got)
	}
}

func TestFromParseError_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := nodeset.Expand(nil)
	ae := FromParseError(err, "expand range")
	if ae == nil || !ae.HasSuggestions() {
		t.Fatalf("FromParseError for empty input = %+v, want suggestions", ae)
	}
}
