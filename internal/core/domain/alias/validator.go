package alias

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultNamePattern allows ASCII letters, digits, underscore, Hangul
// syllables and periods.
const DefaultNamePattern = `^[a-zA-Z0-9_가-힣.]+$`

// Validator checks alias names and commands before they reach the rc file.
type Validator struct {
	namePattern *regexp.Regexp
}

// NewValidator compiles pattern into a Validator. An empty pattern selects
// DefaultNamePattern.
func NewValidator(pattern string) (*Validator, error) {
	if pattern == "" {
		pattern = DefaultNamePattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid alias name pattern %q: %w", pattern, err)
	}
	return &Validator{namePattern: re}, nil
}

// MustNewValidator is like NewValidator but panics on a bad pattern.
func MustNewValidator(pattern string) *Validator {
	v, err := NewValidator(pattern)
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateName rejects empty names and names outside the allowed character class.
func (v *Validator) ValidateName(name string) error {
	if name == "" {
		return NewError(CodeInvalidInput, "alias name cannot be empty", nil)
	}
	if !v.namePattern.MatchString(name) {
		return NewError(CodeInvalidAlias,
			fmt.Sprintf("alias %q may only contain letters, digits, underscores, Hangul and periods", name), nil)
	}
	return nil
}

// Validate checks a full alias definition. Whitespace-only fields count as empty.
func (v *Validator) Validate(a Alias) error {
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Command) == "" {
		return NewError(CodeInvalidInput, "alias and command cannot be empty", nil)
	}
	return v.ValidateName(a.Name)
}
