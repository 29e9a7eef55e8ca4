package prompt

import "errors"

// ErrNonInteractive is returned when prompting in non-interactive mode.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// ColorInput is what the interactive color form collects. Hex carries the
// user-entered color; the caller parses and clamps it.
type ColorInput struct {
	Name string
	Hex  string
}

// Prompter defines the interface for interactive user prompts.
type Prompter interface {
	// ColorForm collects a swatch name and hex color, pre-filled with defaults.
	ColorForm(title string, defaults ColorInput) (ColorInput, error)

	// Select presents options and returns the selected value.
	Select(title string, options []string) (string, error)

	// Confirm prompts for yes/no.
	Confirm(title string, defaultValue bool) (bool, error)
}

// NoopPrompter returns errors for all prompts (non-interactive mode).
type NoopPrompter struct{}

func (p *NoopPrompter) ColorForm(title string, defaults ColorInput) (ColorInput, error) {
	return ColorInput{}, ErrNonInteractive
}

func (p *NoopPrompter) Select(title string, options []string) (string, error) {
	return "", ErrNonInteractive
}

func (p *NoopPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	return false, ErrNonInteractive
}
