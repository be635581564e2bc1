package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc()
)

// Alias Specific Colors
var (
	AliasKeywordColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	AliasNameColor    = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor     = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// AliasLine renders a colored `alias name='command'` line.
func AliasLine(a alias.Alias) string {
	return fmt.Sprintf("%s %s='%s'",
		AliasKeywordColor("alias"),
		AliasNameColor(a.Name),
		AliasCmdColor(a.Command))
}

// SourceHint tells the user how to load the rewritten rc file.
func SourceHint(rcPath string) string {
	return InfoColor(fmt.Sprintf("Run 'source %s' to apply the change.", rcPath))
}
