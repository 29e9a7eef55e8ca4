package prompt

import (
	"github.com/charmbracelet/huh"

	"github.com/swatchfile/swatch/internal/color"
)

// HuhPrompter implements Prompter using the charmbracelet/huh library.
type HuhPrompter struct{}

// NewHuhPrompter creates a new huh-based prompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) ColorForm(title string, defaults ColorInput) (ColorInput, error) {
	result := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Name").
				Validate(func(s string) error {
					_, err := color.ValidateName(s)
					return err
				}).
				Value(&result.Name),
			huh.NewInput().
				Description("Hex color (#rrggbb or #rgb)").
				Validate(func(s string) error {
					_, err := color.ParseHex(s)
					return err
				}).
				Value(&result.Hex),
		),
	)

	if err := form.Run(); err != nil {
		return ColorInput{}, err
	}
	return result, nil
}

func (p *HuhPrompter) Select(title string, options []string) (string, error) {
	var result string

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		opts[i] = huh.NewOption(opt, opt)
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&result).
		Run()

	return result, err
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	result := defaultValue

	err := huh.NewConfirm().
		Title(title).
		Value(&result).
		Run()

	return result, err
}
