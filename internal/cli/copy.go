package cli

import (
	"github.com/amterp/ra"
	"github.com/atotto/clipboard"
	swerr "github.com/swatchfile/swatch/internal/errors"
)

func registerCopy(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("copy")
	cmd.SetDescription("Copy a color to the clipboard")

	ctx.CopyIndex, _ = ra.NewInt("index").
		SetUsage("Color index").
		Register(cmd)

	ctx.CopyFormat, _ = ra.NewString("format").
		SetShort("f").
		SetOptional(true).
		SetDefault("hex").
		SetFlagOnly(true).
		SetUsage("Format to copy: hex, rgb, hsl, or cmyk").
		Register(cmd)

	ctx.CopyUsed, _ = parent.RegisterCmd(cmd)
}

func runCopy(index int, format string) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	records := app.Palette.Load()
	if index < 0 || index >= len(records) {
		Fatal(swerr.IndexOutOfRange(index, len(records)))
	}
	rec := records[index]

	var text string
	switch format {
	case "hex":
		text = rec.RGB.Hex()
	case "rgb":
		text = rec.RGB.String()
	case "hsl":
		text = rec.RGB.HSL().String()
	case "cmyk":
		text = rec.RGB.CMYK().String()
	default:
		Fatal(swerr.InvalidField("format", "must be hex, rgb, hsl, or cmyk"))
	}

	if err := clipboard.WriteAll(text); err != nil {
		Fatal(err)
	}

	PrintSuccess("Copied %s for %q to clipboard", text, rec.Name)
}
