package cli

import (
	"fmt"

	"github.com/amterp/ra"
	swerr "github.com/swatchfile/swatch/internal/errors"
)

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Show one color in every format")

	ctx.ShowIndex, _ = ra.NewInt("index").
		SetUsage("Color index").
		Register(cmd)

	ctx.ShowJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(index int, jsonOutput bool) {
	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}

	records := app.Palette.Load()
	if index < 0 || index >= len(records) {
		Fatal(swerr.IndexOutOfRange(index, len(records)))
	}
	rec := records[index]

	if jsonOutput {
		if err := printJson(colorToJson(rec)); err != nil {
			Fatal(err)
		}
		return
	}

	hex := rec.RGB.Hex()
	fmt.Printf("%s %s\n", Chip(hex), StyleBold.Render(rec.Name))
	fmt.Printf("  hex   %s\n", hex)
	fmt.Printf("  rgb   %s\n", rec.RGB.String())
	fmt.Printf("  hsl   %s\n", rec.RGB.HSL().String())
	fmt.Printf("  cmyk  %s\n", rec.RGB.CMYK().String())
}
