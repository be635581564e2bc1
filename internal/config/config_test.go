package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
)

func TestDefault(t *testing.T) {
	cfg := Default("/home/tester")

	if cfg.RcPath != "/home/tester/.zshrc" {
		t.Errorf("RcPath = %q, want /home/tester/.zshrc", cfg.RcPath)
	}
	if cfg.BackupPath != "/home/tester/.zshrc.bak" {
		t.Errorf("BackupPath = %q, want /home/tester/.zshrc.bak", cfg.BackupPath)
	}
	if cfg.AliasPattern != alias.DefaultNamePattern {
		t.Errorf("AliasPattern = %q, want %q", cfg.AliasPattern, alias.DefaultNamePattern)
	}
}

func TestLoadFrom(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name       string
		content    *string
		want       *Config
		wantErrMsg string
	}{
		{
			name:    "missing file keeps defaults",
			content: nil,
			want:    Default(home),
		},
		{
			name:    "empty file keeps defaults",
			content: stringp(""),
			want:    Default(home),
		},
		{
			name: "overrides pattern and one prompt",
			content: stringp(`
alias_pattern: '^[a-z]+$'
prompts:
  confirm: "Really?"
`),
			want: func() *Config {
				c := Default(home)
				c.AliasPattern = "^[a-z]+$"
				c.Prompts.Confirm = "Really?"
				return c
			}(),
		},
		{
			name:       "unknown field is rejected",
			content:    stringp("rc_path: /etc/passwd\n"),
			wantErrMsg: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o600); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}

			got, err := LoadFrom(home, path)
			if tt.wantErrMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Fatalf("LoadFrom() error = %v, want error containing %q", err, tt.wantErrMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFrom() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfig_Validator(t *testing.T) {
	cfg := Default(t.TempDir())
	cfg.AliasPattern = "("
	if _, err := cfg.Validator(); err == nil {
		t.Error("Validator() expected error for malformed pattern")
	}
}

func stringp(s string) *string { return &s }
