package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
)

func TestListCommand(t *testing.T) {
	t.Run("aliases are shown in file order", func(t *testing.T) {
		env := newTestEnv(t, stringp("alias k='kubectl'\n# comment\nalias ll=\"ls -l\"\nalias g=git\n"))

		out, _, err := env.run(t, "", "list")
		if err != nil {
			t.Fatalf("list unexpected error = %v", err)
		}

		order := []string{"ALIAS NAME", "kubectl", "ls -l", "git"}
		last := -1
		for _, want := range order {
			idx := strings.Index(out, want)
			if idx < 0 {
				t.Fatalf("output = %q, want it to contain %q", out, want)
			}
			if idx < last {
				t.Errorf("%q appears out of order in %q", want, out)
			}
			last = idx
		}
	})

	t.Run("no aliases", func(t *testing.T) {
		env := newTestEnv(t, stringp("# my rc\n"))

		out, _, err := env.run(t, "", "ls")
		if err != nil {
			t.Fatalf("list unexpected error = %v", err)
		}
		if !strings.Contains(out, "No aliases defined in") {
			t.Errorf("output = %q, want the empty message", out)
		}
	})

	t.Run("missing rc file", func(t *testing.T) {
		env := newTestEnv(t, nil)

		_, _, err := env.run(t, "", "list")
		if !errors.Is(err, alias.ErrRead) {
			t.Fatalf("list error = %v, want ErrRead", err)
		}
	})
}
