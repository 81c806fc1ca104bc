package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"pt/internal/placement"
)

// prompter reads one field value. initial is the current value, shown as
// the editable suggestion (terminal) or kept on empty input (pipe).
type prompter interface {
	prompt(label, initial string) (string, error)
	close()
}

// newPrompter picks line editing via liner when stdin is a real terminal,
// and a plain reader otherwise so prompt mode stays scriptable and testable.
func newPrompter(in io.Reader, out io.Writer) prompter {
	if in == os.Stdin && liner.TerminalSupported() {
		return &linerPrompter{state: liner.NewLiner()}
	}

	if in == nil {
		in = strings.NewReader("")
	}

	return &readerPrompter{scanner: bufio.NewScanner(in), out: out}
}

type linerPrompter struct {
	state *liner.State
}

func (p *linerPrompter) prompt(label, initial string) (string, error) {
	value, err := p.state.PromptWithSuggestion(label+": ", initial, len(initial))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}

	return strings.TrimSpace(value), nil
}

func (p *linerPrompter) close() {
	_ = p.state.Close()
}

type readerPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *readerPrompter) prompt(label, initial string) (string, error) {
	if initial != "" {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", label, initial)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", label)
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", label, err)
		}

		return initial, nil
	}

	value := strings.TrimSpace(p.scanner.Text())
	if value == "" {
		return initial, nil
	}

	return value, nil
}

func (p *readerPrompter) close() {}

// promptInput walks the six form fields in form order, prefilled with
// initial (zero for add, the current entry for edit).
func promptInput(in io.Reader, out io.Writer, initial placement.Input) (placement.Input, error) {
	p := newPrompter(in, out)
	defer p.close()

	fields := []struct {
		label string
		dst   *string
	}{
		{"Company", &initial.Company},
		{"Role", &initial.Role},
		{"CTC", &initial.CTC},
		{"Round", &initial.Round},
		{"Date (YYYY-MM-DD)", &initial.Date},
		{"Link", &initial.Link},
	}

	for _, f := range fields {
		value, err := p.prompt(f.label, *f.dst)
		if err != nil {
			return placement.Input{}, err
		}

		*f.dst = value
	}

	return initial, nil
}
