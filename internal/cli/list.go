package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List all colors")

	ctx.ListJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(jsonOutput bool) {
	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}

	records := app.Palette.Load()

	if jsonOutput {
		if err := printJson(NewListOutput(records, app.Palette.CanUndo(), app.Palette.CanRedo())); err != nil {
			Fatal(err)
		}
		return
	}

	if len(records) == 0 {
		PrintInfo("No colors stored")
		return
	}

	for _, rec := range records {
		hex := rec.RGB.Hex()
		fmt.Printf("%2d  %s  %s  %s  %s\n",
			rec.Index,
			Chip(hex),
			StyleBold.Render(fmt.Sprintf("%-20s", rec.Name)),
			hex,
			StyleMuted.Render(rec.RGB.String()),
		)
	}
}
