package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

// selectAliases lets the user pick from candidates with fzf, falling back to
// numeric input when fzf is missing or fails. A nil result with a nil error
// means nothing was selected.
func selectAliases(p *prompter, candidates []alias.Alias, multi bool) ([]alias.Alias, error) {
	selected, err := selectAliasesViaFZF(candidates, multi)
	switch {
	case err == nil:
		if len(selected) == 0 {
			fmt.Fprintln(p.out, ui.InfoColor("No aliases selected via fzf."))
		}
		return selected, nil
	case errors.Is(err, ErrFZFCancelled):
		fmt.Fprintln(p.out, ui.InfoColor("Selection cancelled via fzf."))
		return nil, nil
	case errors.Is(err, ErrFZFNotFound):
		fmt.Fprintln(p.out, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
	default:
		fmt.Fprintln(p.out, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", err)))
	}
	return selectAliasesNumerically(p, candidates, multi)
}

func selectAliasesViaFZF(candidates []alias.Alias, multi bool) ([]alias.Alias, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, ErrFZFNotFound
	}

	if len(candidates) == 0 {
		return []alias.Alias{}, nil
	}

	var inputBuffer bytes.Buffer
	lineMap := make(map[string]alias.Alias)
	for _, c := range candidates {
		// Raw lines keep the fzf output mappable back to aliases.
		rawLine := c.Line()
		lineMap[rawLine] = c
		inputBuffer.WriteString(rawLine + "\n")
	}

	args := []string{"--ansi"}
	if multi {
		args = append(args, "--multi", "--prompt", ui.PromptColor("Select aliases (TAB to multi-select, Enter to confirm) > "))
	} else {
		args = append(args, "--prompt", ui.PromptColor("Select an alias > "))
	}
	fzfCmd := exec.Command(fzfPath, args...)
	fzfCmd.Stdin = &inputBuffer

	var outBuffer, errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = &errBuffer

	if err := fzfCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			// Exit code 1 with no output means no match was selected.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return []alias.Alias{}, nil
			}
		}
		return nil, fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	selectedLinesStr := strings.TrimSpace(outBuffer.String())
	if selectedLinesStr == "" {
		return []alias.Alias{}, nil
	}

	var chosen []alias.Alias
	for _, line := range strings.Split(selectedLinesStr, "\n") {
		if a, ok := lineMap[strings.TrimSpace(line)]; ok {
			chosen = append(chosen, a)
		}
	}
	return chosen, nil
}

func displayNumericChoices(out io.Writer, candidates []alias.Alias, multi bool) {
	if multi {
		fmt.Fprintln(out, ui.PromptColor("Select aliases (e.g., 1,3-5, or 'all', 'none'):"))
	} else {
		fmt.Fprintln(out, ui.PromptColor("Select an alias by number (or 'none'):"))
	}
	for i, c := range candidates {
		fmt.Fprintf(out, "%d. %s\n", i+1, ui.AliasLine(c))
	}
}

func parseNumericSelectionInput(input string, count int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	if trimmedInput == "none" || trimmedInput == "" {
		return []int{}, nil
	}
	if trimmedInput == "all" {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", count, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1)
			}
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num <= 0 || num > count {
			return nil, fmt.Errorf("invalid number (max %d): %s", count, part)
		}
		selections = append(selections, num-1)
	}

	seen := make(map[int]bool)
	unique := make([]int, 0, len(selections))
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}

func selectAliasesNumerically(p *prompter, candidates []alias.Alias, multi bool) ([]alias.Alias, error) {
	if len(candidates) == 0 {
		return []alias.Alias{}, nil
	}

	displayNumericChoices(p.out, candidates, multi)
	var indices []int
	_, err := p.askText("Your choice:", func(input string) error {
		parsed, err := parseNumericSelectionInput(input, len(candidates))
		if err != nil {
			return err
		}
		if !multi && len(parsed) > 1 {
			return errors.New("select a single alias")
		}
		indices = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	chosen := make([]alias.Alias, 0, len(indices))
	for _, idx := range indices {
		chosen = append(chosen, candidates[idx])
	}
	return chosen, nil
}
