// SPDX-License-Identifier: MPL-2.0

package nodeset

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

// ---------------------------------------------------------------------------
// Expand tests
// ---------------------------------------------------------------------------

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragments []string
		want      []string
	}{
		{
			name:      "literal nodes keep order",
			fragments: []string{"node02", "node01"},
			want:      []string{"node02", "node01"},
		},
		{
			name:      "range ascends",
			fragments: []string{"node[03-05]"},
			want:      []string{"node03", "node04", "node05"},
		},
		{
			name:      "reversed range still ascends",
			fragments: []string{"node[05-03]"},
			want:      []string{"node03", "node04", "node05"},
		},
		{
			name:      "duplicates retained",
			fragments: []string{"node01", "node[01-02]"},
			want:      []string{"node01", "node01", "node02"},
		},
		{
			name:      "comma-joined fragment",
			fragments: []string{"node[00-01],node08"},
			want:      []string{"node00", "node01", "node08"},
		},
		{
			name:      "mixed widths are distinct names",
			fragments: []string{"node1", "node01", "node001"},
			want:      []string{"node1", "node01", "node001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Expand(tt.fragments)
			if err != nil {
				t.Fatalf("Expand(%v) returned error: %v", tt.fragments, err)
			}
			if !slices.Equal(names(got), tt.want) {
				t.Errorf("Expand(%v) = %v, want %v", tt.fragments, names(got), tt.want)
			}
		})
	}
}

// TestExpand_LiteralSequence pins the exact ordering of a mixed input:
// appearance order across tokens, ascending order within a range, no
// deduplication across widths.
func TestExpand_LiteralSequence(t *testing.T) {
	t.Parallel()

	got, err := Expand([]string{"node00,node0000,node[000-088]"})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}

	want := []string{"node00", "node0000"}
	for i := 0; i <= 88; i++ {
		want = append(want, fmt.Sprintf("node%03d", i))
	}
	if !slices.Equal(names(got), want) {
		t.Errorf("Expand sequence mismatch:\n got %v\nwant %v", names(got), want)
	}
}

func TestExpand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragments []string
		wantErr   error
	}{
		{name: "no fragments", fragments: nil, wantErr: ErrEmptyInput},
		{name: "separators only", fragments: []string{" , "}, wantErr: ErrEmptyInput},
		{name: "bad token aborts all", fragments: []string{"node01", "bogus!"}, wantErr: ErrInvalidNodeSyntax},
		{name: "mismatched width aborts all", fragments: []string{"node01", "node[0-999]"}, wantErr: ErrMismatchedRangeWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := Expand(tt.fragments)
			if err == nil {
				t.Fatalf("Expand(%v) succeeded, want error", tt.fragments)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expand(%v) error = %v, want %v", tt.fragments, err, tt.wantErr)
			}
			if nodes != nil {
				t.Errorf("Expand(%v) returned partial result %v alongside error", tt.fragments, names(nodes))
			}
		})
	}
}

func TestExpand_CustomSeparators(t *testing.T) {
	t.Parallel()

	got, err := Expand([]string{"node01;node02"}, WithSeparators(";"))
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	want := []string{"node01", "node02"}
	if !slices.Equal(names(got), want) {
		t.Errorf("Expand = %v, want %v", names(got), want)
	}
}

// ---------------------------------------------------------------------------
// Sort / dedup tests
// ---------------------------------------------------------------------------

func TestSortNodes(t *testing.T) {
	t.Parallel()

	in, err := Expand([]string{"node12", "node9", "node03", "alpha1", "node09"})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	got := SortNodes(in)

	want := []string{"alpha1", "node9", "node03", "node09", "node12"}
	if !slices.Equal(names(got), want) {
		t.Errorf("SortNodes = %v, want %v", names(got), want)
	}
	// Input must not be reordered in place.
	if in[0].Name() != "node12" {
		t.Errorf("SortNodes mutated its input: %v", names(in))
	}
}

func TestDedup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragments []string
		want      []string
	}{
		{
			name:      "adjacent duplicates collapse",
			fragments: []string{"node01,node01,node01,node02"},
			want:      []string{"node01", "node02"},
		},
		{
			name:      "widths stay distinct",
			fragments: []string{"node9", "node09", "node9"},
			want:      []string{"node9", "node09"},
		},
		{
			name:      "no duplicates untouched",
			fragments: []string{"node01", "node02"},
			want:      []string{"node01", "node02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, err := Expand(tt.fragments)
			if err != nil {
				t.Fatalf("Expand: %v", err)
			}
			got := Dedup(SortNodes(in))
			if !slices.Equal(names(got), tt.want) {
				t.Errorf("Dedup = %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestDedup_Empty(t *testing.T) {
	t.Parallel()

	if got := Dedup(nil); got != nil {
		t.Errorf("Dedup(nil) = %v, want nil", got)
	}
}

// TestExpandUnique_Idempotent checks that sorting and deduplicating an
// already sorted, duplicate-free sequence changes nothing.
func TestExpandUnique_Idempotent(t *testing.T) {
	t.Parallel()

	once, err := ExpandUnique([]string{"node[00-05]", "node03", "node9", "node[02-08]"})
	if err != nil {
		t.Fatalf("ExpandUnique: %v", err)
	}
	twice := Dedup(SortNodes(once))
	if !slices.Equal(names(once), names(twice)) {
		t.Errorf("sort+dedup not idempotent:\n once %v\ntwice %v", names(once), names(twice))
	}
}

func TestExpandUnique(t *testing.T) {
	t.Parallel()

	got, err := ExpandUnique([]string{"node08", "node[00-02]", "node01"})
	if err != nil {
		t.Fatalf("ExpandUnique: %v", err)
	}
	want := []string{"node00", "node01", "node02", "node08"}
	if !slices.Equal(names(got), want) {
		t.Errorf("ExpandUnique = %v, want %v", names(got), want)
	}
}
