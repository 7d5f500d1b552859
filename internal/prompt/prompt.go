// Package prompt reads line answers to interactive questions.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const yes = "yes"

// Prompter asks questions on out and reads one line answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given input and output.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer line.
// io.EOF is returned only when the input ends before any answer text.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose asks until the lowercased answer is one of allowed, printing invalid after each miss.
func (p *Prompter) Choose(question, invalid string, allowed []string) (string, error) {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		if _, ok := set[answer]; ok {
			return answer, nil
		}
		if _, err := fmt.Fprintln(p.out, invalid); err != nil {
			return "", err
		}
	}
}

// Confirm asks question and reports whether the answer is "yes".
// End of input counts as a "no".
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(answer, yes), nil
}
