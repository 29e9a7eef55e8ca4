package cli

import (
	"fmt"

	"github.com/amterp/ra"
	swerr "github.com/swatchfile/swatch/internal/errors"
)

func registerDelete(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("delete")
	cmd.SetDescription("Delete a color")

	ctx.DeleteIndex, _ = ra.NewInt("index").
		SetUsage("Color index").
		Register(cmd)

	ctx.DeleteForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(cmd)

	ctx.DeleteUsed, _ = parent.RegisterCmd(cmd)
}

func runDelete(index int, force, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	records := app.Palette.Load()
	if index < 0 || index >= len(records) {
		Fatal(swerr.IndexOutOfRange(index, len(records)))
	}
	rec := records[index]

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("deleting %q requires --force in non-interactive mode", rec.Name))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Delete %q (%s)?", rec.Name, rec.RGB.Hex()),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	remaining, err := app.Palette.Delete(index)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Deleted %q (%d colors remaining)", rec.Name, len(remaining))
}
