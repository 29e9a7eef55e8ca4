package cli

import (
	"github.com/amterp/ra"
)

func registerMove(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("move")
	cmd.SetDescription("Move a color to a new position")

	ctx.MoveFrom, _ = ra.NewInt("from").
		SetUsage("Current index").
		Register(cmd)

	ctx.MoveTo, _ = ra.NewInt("to").
		SetUsage("Target index").
		Register(cmd)

	ctx.MoveUsed, _ = parent.RegisterCmd(cmd)
}

func runMove(from, to int) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	records, err := app.Palette.Move(from, to)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Moved %q to index %d", records[to].Name, to)
}
