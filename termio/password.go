// Package termio reads wallet passwords from an interactive terminal without
// echoing them.
package termio

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptPassword prompts on stderr and reads a password from stdin with
// echoing disabled. Caller should zero the returned slice after use.
func PromptPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
