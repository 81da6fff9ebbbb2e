// Package console isolates all interactive prompt and response I/O so the
// organize and copy loops can be driven by tests without a real terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console is the boundary for interactive I/O
type Console interface {
	// Printf writes formatted output to the operator
	Printf(format string, args ...any)

	// ReadLine prints prompt, then reads one line with surrounding
	// whitespace trimmed. EOF yields an empty string.
	ReadLine(prompt string) string
}

// Stdio is the real-terminal Console
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio returns a Console over stdin/stdout
func NewStdio() *Stdio {
	return &Stdio{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Stdio) ReadLine(prompt string) string {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// Prompter bundles a Console with the confirmation policy. Confirm gates
// honor assume-yes; plain yes/no questions do not, because they choose
// between behaviors rather than guard a side effect.
type Prompter struct {
	Console   Console
	AssumeYes bool
}

// NewPrompter wraps a console
func NewPrompter(console Console, assumeYes bool) *Prompter {
	return &Prompter{Console: console, AssumeYes: assumeYes}
}

// Printf forwards to the underlying console
func (p *Prompter) Printf(format string, args ...any) {
	p.Console.Printf(format, args...)
}

// ReadLine forwards to the underlying console
func (p *Prompter) ReadLine(prompt string) string {
	return p.Console.ReadLine(prompt)
}

// YesNo asks a plain yes/no question. An empty response takes the default.
func (p *Prompter) YesNo(message string, defaultNo bool) bool {
	suffix := " [Y/n]: "
	if defaultNo {
		suffix = " [y/N]: "
	}
	response := strings.ToLower(p.Console.ReadLine(message + suffix))
	if response == "" {
		return !defaultNo
	}
	return response == "y" || response == "yes"
}

// Confirm asks before a side effect. Assume-yes mode auto-approves.
func (p *Prompter) Confirm(message string) bool {
	if p.AssumeYes {
		return true
	}
	return p.YesNo(message, true)
}
