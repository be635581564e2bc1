package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lazyasf/lazyasf/internal/handlers/ui"
)

// ErrInputClosed is returned when stdin ends before a prompt was answered.
var ErrInputClosed = errors.New("input closed before the prompt was answered")

// prompter asks questions on out and reads answers line by line from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// askText keeps asking until validate accepts the answer. The validation
// message is shown inline before the prompt is repeated.
func (p *prompter) askText(message string, validate func(string) error) (string, error) {
	for {
		fmt.Fprint(p.out, ui.PromptColor("? "+message+" "))
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if validate == nil {
			return answer, nil
		}
		if vErr := validate(answer); vErr != nil {
			fmt.Fprintln(p.out, ui.ErrorColor(">> "+vErr.Error()))
			continue
		}
		return answer, nil
	}
}

// confirm asks a yes/no question. An empty answer selects defaultYes.
func (p *prompter) confirm(message string, defaultYes bool) (bool, error) {
	hint := "(y/N)"
	if defaultYes {
		hint = "(Y/n)"
	}
	for {
		fmt.Fprint(p.out, ui.PromptColor(fmt.Sprintf("? %s %s ", message, hint)))
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, ui.ErrorColor(">> Please answer y or n."))
	}
}

func notBlank(message string) func(string) error {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New(message)
		}
		return nil
	}
}
