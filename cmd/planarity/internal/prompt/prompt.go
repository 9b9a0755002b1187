// Package prompt implements the line-based prompts used by setup commands.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New creates a prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Text prompts for one line of text. An empty answer yields defaultValue.
func (p *Prompter) Text(prompt, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(p.w, "%s: ", prompt)
	}

	input, _ := p.reader.ReadString('\n')
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultValue
	}
	return input
}

// Confirm prompts for a yes/no answer.
func (p *Prompter) Confirm(prompt string, defaultYes bool) bool {
	choices := "y/N"
	if defaultYes {
		choices = "Y/n"
	}

	fmt.Fprintf(p.w, "%s [%s]: ", prompt, choices)

	input, _ := p.reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}
