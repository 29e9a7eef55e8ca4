package cli

import (
	"github.com/amterp/ra"
	swerr "github.com/swatchfile/swatch/internal/errors"
	"github.com/swatchfile/swatch/internal/prompt"
)

func registerEdit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("edit")
	cmd.SetDescription("Edit a color")

	ctx.EditIndex, _ = ra.NewInt("index").
		SetUsage("Color index").
		Register(cmd)

	ctx.EditName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New name").
		Register(cmd)

	ctx.EditHex, _ = ra.NewString("hex").
		SetShort("x").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New color as hex (#rrggbb or #rgb)").
		Register(cmd)

	ctx.EditR, _ = ra.NewString("r").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New red channel (0-255)").
		Register(cmd)

	ctx.EditG, _ = ra.NewString("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New green channel (0-255)").
		Register(cmd)

	ctx.EditB, _ = ra.NewString("b").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New blue channel (0-255)").
		Register(cmd)

	ctx.EditUsed, _ = parent.RegisterCmd(cmd)
}

func runEdit(index int, name, hex, r, g, b string, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	records := app.Palette.Load()
	if index < 0 || index >= len(records) {
		Fatal(swerr.IndexOutOfRange(index, len(records)))
	}
	current := records[index]

	// No change flags: open the interactive form pre-filled with the
	// record being edited.
	if name == "" && hex == "" && r == "" && g == "" && b == "" {
		input, err := app.Prompter.ColorForm("Edit color", prompt.ColorInput{
			Name: current.Name,
			Hex:  current.RGB.Hex(),
		})
		if err != nil {
			Fatal(err)
		}
		name = input.Name
		hex = input.Hex
	}

	// Unchanged fields keep their current values
	if name == "" {
		name = current.Name
	}
	rgb := current.RGB
	if hex != "" || r != "" || g != "" || b != "" {
		rgb, err = resolveRGB(hex, r, g, b)
		if err != nil {
			Fatal(err)
		}
	}

	if _, err := app.Palette.Edit(index, name, rgb); err != nil {
		Fatal(err)
	}

	PrintSuccess("Updated %q %s %s at index %d", name, Chip(rgb.Hex()), rgb.Hex(), index)
}
