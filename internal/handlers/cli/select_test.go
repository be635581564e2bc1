package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
)

func TestParseNumericSelectionInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		want    []int
		wantErr bool
	}{
		{name: "none", input: "none", count: 3, want: []int{}},
		{name: "empty", input: "  ", count: 3, want: []int{}},
		{name: "all", input: "ALL", count: 3, want: []int{0, 1, 2}},
		{name: "single", input: "2", count: 3, want: []int{1}},
		{name: "list and range", input: "1, 3-4", count: 4, want: []int{0, 2, 3}},
		{name: "duplicates removed", input: "2,1-2", count: 3, want: []int{1, 0}},
		{name: "out of range", input: "4", count: 3, wantErr: true},
		{name: "zero", input: "0", count: 3, wantErr: true},
		{name: "reversed range", input: "3-1", count: 3, wantErr: true},
		{name: "not a number", input: "x", count: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNumericSelectionInput(tt.input, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNumericSelectionInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseNumericSelectionInput() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectAliases_FallsBackWithoutFZF(t *testing.T) {
	t.Setenv("PATH", "")
	candidates := []alias.Alias{{Name: "g", Command: "git"}, {Name: "k", Command: "kubectl"}, {Name: "ll", Command: "ls -l"}}

	var out bytes.Buffer
	got, err := selectAliases(newPrompter(strings.NewReader("1,3\n"), &out), candidates, true)
	if err != nil {
		t.Fatalf("selectAliases() error = %v", err)
	}
	want := []alias.Alias{candidates[0], candidates[2]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selectAliases() mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "fzf not found in PATH") {
		t.Errorf("output = %q, want the fzf fallback warning", out.String())
	}
}
