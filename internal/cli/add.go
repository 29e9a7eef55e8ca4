package cli

import (
	"github.com/amterp/ra"
	"github.com/swatchfile/swatch/internal/prompt"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Add a new color")

	ctx.AddName, _ = ra.NewString("name").
		SetOptional(true).
		SetUsage("Color name").
		Register(cmd)

	ctx.AddHex, _ = ra.NewString("hex").
		SetShort("x").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Color as hex (#rrggbb or #rgb)").
		Register(cmd)

	ctx.AddR, _ = ra.NewString("r").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Red channel (0-255)").
		Register(cmd)

	ctx.AddG, _ = ra.NewString("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Green channel (0-255)").
		Register(cmd)

	ctx.AddB, _ = ra.NewString("b").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Blue channel (0-255)").
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

func runAdd(name, hex, r, g, b string, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	// No arguments at all: fall back to the interactive form
	if name == "" && hex == "" && r == "" && g == "" && b == "" {
		input, err := app.Prompter.ColorForm("New color", prompt.ColorInput{})
		if err != nil {
			Fatal(err)
		}
		name = input.Name
		hex = input.Hex
	}

	rgb, err := resolveRGB(hex, r, g, b)
	if err != nil {
		Fatal(err)
	}

	records, err := app.Palette.Add(name, rgb)
	if err != nil {
		Fatal(err)
	}

	added := records[len(records)-1]
	PrintSuccess("Added %q %s %s at index %d", added.Name, Chip(added.RGB.Hex()), added.RGB.Hex(), added.Index)
}
