package alias

import (
	"errors"
	"testing"
)

func TestValidator_Validate(t *testing.T) {
	v := MustNewValidator("")

	tests := []struct {
		name     string
		input    Alias
		wantCode ErrorCode
	}{
		{name: "simple ascii", input: Alias{Name: "gs", Command: "git status"}},
		{name: "digits and underscore", input: Alias{Name: "k8s_get", Command: "kubectl get"}},
		{name: "period", input: Alias{Name: "..", Command: "cd .."}},
		{name: "hangul", input: Alias{Name: "깃상태", Command: "git status"}},
		{name: "empty name", input: Alias{Name: "", Command: "x"}, wantCode: CodeInvalidInput},
		{name: "empty command", input: Alias{Name: "x", Command: ""}, wantCode: CodeInvalidInput},
		{name: "blank command", input: Alias{Name: "x", Command: "   "}, wantCode: CodeInvalidInput},
		{name: "blank name", input: Alias{Name: " \t", Command: "x"}, wantCode: CodeInvalidInput},
		{name: "space and bang", input: Alias{Name: "bad name!", Command: "x"}, wantCode: CodeInvalidAlias},
		{name: "regex metacharacters", input: Alias{Name: "g+", Command: "git"}, wantCode: CodeInvalidAlias},
		{name: "equals sign", input: Alias{Name: "a=b", Command: "x"}, wantCode: CodeInvalidAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate(%+v) unexpected error = %v", tt.input, err)
				}
				return
			}
			if got := CodeOf(err); got != tt.wantCode {
				t.Errorf("Validate(%+v) code = %q, want %q (err = %v)", tt.input, got, tt.wantCode, err)
			}
		})
	}
}

func TestNewValidator_CustomPattern(t *testing.T) {
	v, err := NewValidator(`^[a-z]+$`)
	if err != nil {
		t.Fatalf("NewValidator() unexpected error = %v", err)
	}
	if err := v.ValidateName("abc"); err != nil {
		t.Errorf("ValidateName(abc) unexpected error = %v", err)
	}
	if !errors.Is(v.ValidateName("ABC"), ErrInvalidAliasName) {
		t.Errorf("ValidateName(ABC) expected ErrInvalidAliasName")
	}

	if _, err := NewValidator(`[`); err == nil {
		t.Error("NewValidator([) expected error for malformed pattern")
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewError(CodeBackupError, "could not save backup", cause)

	if !errors.Is(err, ErrBackup) {
		t.Error("errors.Is(err, ErrBackup) = false, want true")
	}
	if errors.Is(err, ErrWrite) {
		t.Error("errors.Is(err, ErrWrite) = true, want false")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got, want := err.Error(), "could not save backup: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("CodeOf(plain error) should be empty")
	}
}

func TestAlias_Line(t *testing.T) {
	a := Alias{Name: "gs", Command: "git status"}
	if got, want := a.Line(), "alias gs='git status'"; got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}
