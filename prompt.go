package password

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Prompt writes prompt to stderr and reads a password from stdin with echo
// disabled. When stdin is not a terminal it falls back to reading a single
// line, so piped input works in scripts and tests. The intermediate buffer
// returned by the terminal read is wiped once its content is copied in.
func Prompt(prompt string) (*Password, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		p := New()
		if err := ReadLine(os.Stdin, p); err != nil {
			return nil, err
		}
		trimCarriageReturn(p)
		return p, nil
	}

	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	p := FromBytes(raw)
	wipe(raw)
	return p, nil
}

// PromptConfirm prompts twice and fails unless both entries match. The
// confirmation copy is cleared before return.
func PromptConfirm(prompt, confirmPrompt string) (*Password, error) {
	p, err := Prompt(prompt)
	if err != nil {
		return nil, err
	}
	confirm, err := Prompt(confirmPrompt)
	if err != nil {
		p.Clear()
		return nil, err
	}
	defer confirm.Clear()
	if !p.Equal(confirm) {
		p.Clear()
		return nil, fmt.Errorf("passwords do not match")
	}
	return p, nil
}

// trimCarriageReturn drops a trailing '\r' left by CRLF line endings.
func trimCarriageReturn(p *Password) {
	if p.HasSuffixByte('\r') {
		p.Pop()
	}
}
