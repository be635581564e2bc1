package shellconfig

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
)

// aliasListPattern strips at most one optional quote on each side of the
// command. Unquoted or asymmetrically quoted commands keep their quotes.
// A trailing \r is left out of the command so CRLF files list cleanly.
var aliasListPattern = regexp.MustCompile(`(?m)^alias\s+([^=]+)=['"]?([^\r\n]*?)['"]?\r?$`)

// definitionPattern matches a line defining name, up to but not including
// its line terminator. The name is always quoted, so both upsert and remove
// treat it literally.
func definitionPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^alias\s+` + regexp.QuoteMeta(name) + `=[^\r\n]*`)
}

// checkAlias rejects blank fields. The name's character class is the
// validator's concern.
func checkAlias(a alias.Alias) error {
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Command) == "" {
		return alias.NewError(alias.CodeInvalidInput, "alias and command cannot be empty", nil)
	}
	return nil
}

// upsertAliasLine replaces the first definition of a.Name with a.Line(), or
// appends the line after a newline. The splice is literal; "$" in the
// command is never expanded.
func upsertAliasLine(content string, a alias.Alias) (string, bool) {
	line := a.Line()
	loc := definitionPattern(a.Name).FindStringIndex(content)
	if loc == nil {
		return content + "\n" + line, false
	}
	return content[:loc[0]] + line + content[loc[1]:], true
}

// removeAliasLine empties the first line defining name.
func removeAliasLine(content, name string) (string, bool) {
	loc := definitionPattern(name).FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	return content[:loc[0]] + content[loc[1]:], true
}

func parseAliasLines(content string) []alias.Alias {
	matches := aliasListPattern.FindAllStringSubmatch(content, -1)
	aliases := make([]alias.Alias, 0, len(matches))
	for _, m := range matches {
		aliases = append(aliases, alias.Alias{
			Name:    strings.TrimSpace(m[1]),
			Command: strings.TrimSpace(m[2]),
		})
	}
	return aliases
}

// resolveWriteTarget follows a symlinked rc file so the rename in
// atomic.WriteFile replaces the link target, not the link.
func resolveWriteTarget(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
